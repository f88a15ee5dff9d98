package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// NumberAssigner is called by CreateInvoice with the enterprise row locked.
// It returns the invoice number and the counter to persist in the same transaction.
type NumberAssigner func(enterprise domain.Enterprise) (number string, sequence domain.InvoiceNumberState, sequenceYear int)

// InvoiceFilter narrows ListInvoices.
type InvoiceFilter struct {
	ClientID *string
	Status   *domain.InvoiceStatus
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its lines, or apperrors.ErrNotFound.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns a page of invoices (most recent first) and the token for the next page.
	ListInvoices(ctx context.Context, filter InvoiceFilter, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// ListInvoicesByYear returns every invoice issued in the given year, lines included.
	ListInvoicesByYear(ctx context.Context, year int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// CreateInvoice locks the enterprise counter, asks assign for a number,
	// then stores the invoice, its lines and the new counter atomically.
	CreateInvoice(ctx context.Context, invoice domain.Invoice, assign NumberAssigner) (*domain.Invoice, error)

	// UpdateInvoiceStatus persists status, payment date and audit fields.
	UpdateInvoiceStatus(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
