package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const enterpriseColumns = `enterprise_id, name, address, email, phone, siret, vat_number, iban, bic,
	next_invoice_number, invoice_prefix, invoice_number_year,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEnterpriseRepository struct {
	BaseRepository
}

func newPgxEnterpriseRepository(pool *pgxpool.Pool) portsrepo.EnterpriseRepositoryFacade {
	return &PgxEnterpriseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EnterpriseRepositoryFacade = (*PgxEnterpriseRepository)(nil)

func (r *PgxEnterpriseRepository) FindEnterprise(ctx context.Context) (*domain.Enterprise, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+enterpriseColumns+` FROM enterprise LIMIT 1;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query enterprise", err)
	}
	return collectEnterprise(rows)
}

// findEnterpriseForUpdate locks the enterprise row for the lifetime of tx.
// Every invoice number is allocated while holding this lock.
func findEnterpriseForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Enterprise, error) {
	rows, err := tx.Query(ctx, `SELECT `+enterpriseColumns+` FROM enterprise LIMIT 1 FOR UPDATE;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock enterprise", err)
	}
	return collectEnterprise(rows)
}

func collectEnterprise(rows pgx.Rows) (*domain.Enterprise, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Enterprise])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan enterprise", err)
	}
	enterprise := mapping.ToDomainEnterprise(m)
	return &enterprise, nil
}

// SaveEnterprise inserts the company on first setup. Later calls update
// identity fields and the prefix but leave the counter untouched.
func (r *PgxEnterpriseRepository) SaveEnterprise(ctx context.Context, enterprise domain.Enterprise) error {
	m := mapping.ToModelEnterprise(enterprise)
	query := `
		INSERT INTO enterprise (` + enterpriseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (enterprise_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			siret = EXCLUDED.siret,
			vat_number = EXCLUDED.vat_number,
			iban = EXCLUDED.iban,
			bic = EXCLUDED.bic,
			invoice_prefix = EXCLUDED.invoice_prefix,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EnterpriseID, m.Name, m.Address, m.Email, m.Phone, m.SIRET, m.VATNumber, m.IBAN, m.BIC,
		m.NextInvoiceNumber, m.InvoicePrefix, m.InvoiceNumberYear,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "enterprise "+m.EnterpriseID)
	}
	return nil
}

func (r *PgxEnterpriseRepository) UpdateSequence(ctx context.Context, sequence domain.InvoiceNumberState, sequenceYear int, updatedBy string) error {
	return updateSequence(ctx, r.Pool, sequence, sequenceYear, updatedBy)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func updateSequence(ctx context.Context, db execer, sequence domain.InvoiceNumberState, sequenceYear int, updatedBy string) error {
	query := `
		UPDATE enterprise
		SET next_invoice_number = $1, invoice_prefix = $2, invoice_number_year = $3,
		    last_updated_at = NOW(), last_updated_by = $4;
	`
	tag, err := db.Exec(ctx, query, sequence.NextSequence, sequence.Prefix, sequenceYear, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice sequence", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
