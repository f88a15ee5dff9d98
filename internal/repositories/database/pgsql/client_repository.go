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
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `client_id, company_name, contact_name, email, phone, address, siret, vat_number, iban,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.CompanyName, m.ContactName, m.Email, m.Phone, m.Address,
		m.SIRET, m.VATNumber, m.IBAN,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "client "+m.ClientID)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query client "+clientID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client by ID "+clientID, err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY COALESCE(company_name, contact_name), client_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan client rows", err)
	}
	return mapping.ToDomainClientSlice(ms), nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET company_name = $2, contact_name = $3, email = $4, phone = $5, address = $6,
		    siret = $7, vat_number = $8, iban = $9, last_updated_at = $10, last_updated_by = $11
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.CompanyName, m.ContactName, m.Email, m.Phone, m.Address,
		m.SIRET, m.VATNumber, m.IBAN, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "client "+m.ClientID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client. Invoices keep a foreign key on clients, so a
// billed client cannot be deleted.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return translateWriteError(err, "client "+clientID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
