package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
	// GetInvoiceTotals returns the derived totals of a stored invoice.
	GetInvoiceTotals(ctx context.Context, invoiceID string) (domain.InvoiceTotals, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, actor string) (*domain.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, actor string) (*domain.Invoice, error)
	CancelInvoice(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
