package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `invoice_id, number, client_id, issue_date, due_date, payment_date, status,
	tax_rate, discount_rate, notes, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_item_id, invoice_id, position, designation, quantity, unit_price,
	order_reference, order_date`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices and their lines.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

// CreateInvoice allocates the invoice number and stores the invoice, its lines
// and the advanced counter in one transaction. Concurrent callers queue on the
// enterprise row lock, so no two invoices can receive the same sequence.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, assign portsrepo.NumberAssigner) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	enterprise, err := findEnterpriseForUpdate(ctx, tx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: the issuing enterprise must be configured before invoicing", apperrors.ErrValidation)
		}
		return nil, err
	}

	number, sequence, sequenceYear := assign(*enterprise)
	invoice.Number = number

	m := mapping.ToModelInvoice(invoice)
	invoiceQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		m.InvoiceID, m.Number, m.ClientID, m.IssueDate, m.DueDate, m.PaymentDate, m.Status,
		m.TaxRate, m.DiscountRate, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateWriteError(err, "invoice "+number)
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO invoice_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	for _, line := range invoice.Lines {
		l := mapping.ToModelInvoiceLine(line)
		batch.Queue(lineQuery,
			l.LineItemID, l.InvoiceID, l.Position, l.Designation, l.Quantity, l.UnitPrice,
			l.OrderReference, l.OrderDate,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, translateWriteError(err, "lines of invoice "+number)
	}

	if err := updateSequence(ctx, tx, sequence, sequenceYear, invoice.CreatedBy); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindInvoiceByID retrieves an invoice and its lines.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice "+invoiceID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}

	lines, err := r.findLines(ctx, []string{invoiceID})
	if err != nil {
		return nil, err
	}

	invoice := mapping.ToDomainInvoice(m, lines[invoiceID])
	return &invoice, nil
}

// ListInvoices retrieves a page of invoices, most recent issue date first,
// using the same keyset token scheme as the other listings.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceFilter, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether a next page exists.
	fetchLimit := limit + 1

	var conditions []string
	var args []any
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, strings.Replace(clause, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.ClientID != nil && *filter.ClientID != "" {
		addCondition("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		addCondition("status = ?", string(*filter.Status))
	}
	if nextToken != nil && *nextToken != "" {
		lastIssueDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, lastIssueDate, lastCreatedAt)
		conditions = append(conditions, fmt.Sprintf("(issue_date, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY issue_date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan invoice rows", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		token := pagination.EncodeToken(last.IssueDate, last.CreatedAt)
		nextTokenVal = &token
	}

	invoices, err := r.attachLines(ctx, ms)
	if err != nil {
		return nil, nil, err
	}
	return invoices, nextTokenVal, nil
}

// ListInvoicesByYear retrieves every invoice issued during year, lines included.
func (r *PgxInvoiceRepository) ListInvoicesByYear(ctx context.Context, year int) ([]domain.Invoice, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE issue_date >= $1 AND issue_date < $2
		ORDER BY issue_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices for year "+strconv.Itoa(year), err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan invoice rows", err)
	}
	return r.attachLines(ctx, ms)
}

// UpdateInvoiceStatus persists a lifecycle transition.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET status = $2, payment_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.InvoiceID, m.Status, m.PaymentDate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "invoice "+m.InvoiceID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) attachLines(ctx context.Context, ms []models.Invoice) ([]domain.Invoice, error) {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.InvoiceID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		invoices[i] = mapping.ToDomainInvoice(m, lines[m.InvoiceID])
	}
	return invoices, nil
}

// findLines loads the lines of several invoices, grouped by invoice and ordered by position.
func (r *PgxInvoiceRepository) findLines(ctx context.Context, invoiceIDs []string) (map[string][]models.InvoiceLine, error) {
	grouped := make(map[string][]models.InvoiceLine, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT ` + lineColumns + `
		FROM invoice_lines
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice lines", err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InvoiceLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan invoice line rows", err)
	}
	for _, l := range lines {
		grouped[l.InvoiceID] = append(grouped[l.InvoiceID], l)
	}
	return grouped, nil
}
