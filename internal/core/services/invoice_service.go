package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/invoicing"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/SscSPs/invoicing_app/internal/utils/validation"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentTermDays = 30
	defaultTotalsCacheSize = 512
)

var maxDiscountRate = decimal.NewFromInt(100)

// invoiceService issues invoices and drives their lifecycle.
type invoiceService struct {
	BaseService
	invoiceRepo     portsrepo.InvoiceRepositoryWithTx
	clientRepo      portsrepo.ClientReader
	productRepo     portsrepo.ProductReader
	taxRates        validation.TaxRateSet
	paymentTermDays int
	totalsCacheSize int
	totals          *lru.Cache[string, domain.InvoiceTotals]
}

// InvoiceServiceOption configures optional dependencies of the invoice service.
type InvoiceServiceOption func(*invoiceService)

// WithTaxRates restricts invoice tax rates to the given set.
func WithTaxRates(rates validation.TaxRateSet) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.taxRates = rates
	}
}

// WithPaymentTermDays sets the due date offset used when a request omits it.
func WithPaymentTermDays(days int) InvoiceServiceOption {
	return func(s *invoiceService) {
		if days >= 0 {
			s.paymentTermDays = days
		}
	}
}

// WithTotalsCacheSize sets how many invoice totals are memoized. Zero disables the cache.
func WithTotalsCacheSize(size int) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.totalsCacheSize = size
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Now = now
	}
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryWithTx,
	clientRepo portsrepo.ClientReader,
	productRepo portsrepo.ProductReader,
	opts ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	s := &invoiceService{
		invoiceRepo:     invoiceRepo,
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		taxRates:        validation.NewTaxRateSet(),
		paymentTermDays: defaultPaymentTermDays,
		totalsCacheSize: defaultTotalsCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.totalsCacheSize > 0 {
		// lru.New only fails for a non-positive size.
		s.totals, _ = lru.New[string, domain.InvoiceTotals](s.totalsCacheSize)
	}
	return s
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, actor string) (*domain.Invoice, error) {
	logger := s.GetLogger(ctx)
	now := s.now().UTC()

	if !s.taxRates.IsValidTaxRate(req.TaxRate) {
		return nil, fmt.Errorf("%w: tax rate %s is not one of %s", apperrors.ErrValidation, req.TaxRate, s.taxRates)
	}
	if req.DiscountRate.IsNegative() || req.DiscountRate.GreaterThan(maxDiscountRate) {
		return nil, fmt.Errorf("%w: discount rate must be between 0 and 100", apperrors.ErrValidation)
	}

	issueDate := dayOf(now)
	if req.IssueDate != nil {
		issueDate = dayOf(*req.IssueDate)
	}
	dueDate := issueDate.AddDate(0, 0, s.paymentTermDays)
	if req.DueDate != nil {
		dueDate = dayOf(*req.DueDate)
	}
	if dueDate.Before(issueDate) {
		return nil, fmt.Errorf("%w: due date precedes issue date", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s does not exist", apperrors.ErrValidation, req.ClientID)
		}
		return nil, fmt.Errorf("failed to load client %s: %w", req.ClientID, err)
	}

	invoiceID := uuid.NewString()
	lines, err := s.buildLines(ctx, invoiceID, req.Lines)
	if err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceID:    invoiceID,
		ClientID:     client.ClientID,
		IssueDate:    issueDate,
		DueDate:      dueDate,
		Status:       domain.InvoiceIssued,
		TaxRate:      req.TaxRate,
		DiscountRate: req.DiscountRate,
		Notes:        strings.TrimSpace(req.Notes),
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	initials := invoicing.ClientInitials(client.CompanyName, client.ContactName)
	created, err := s.invoiceRepo.CreateInvoice(ctx, invoice, numberAssigner(initials, issueDate))
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}

	logger.Info("Invoice issued",
		slog.String("invoice_id", created.InvoiceID),
		slog.String("number", created.Number),
		slog.Int("lines", len(created.Lines)))
	s.remember(created)
	return created, nil
}

// numberAssigner allocates the next number from the locked enterprise counter.
// A counter left over from an earlier year restarts at 1; an invoice backdated
// into an earlier year keeps the current counter so numbers never repeat.
func numberAssigner(initials string, issueDate time.Time) portsrepo.NumberAssigner {
	return func(enterprise domain.Enterprise) (string, domain.InvoiceNumberState, int) {
		state := enterprise.Sequence
		year := enterprise.SequenceYear
		if issueDate.Year() > year {
			state = invoicing.ResetAnnualSequence(state)
			year = issueDate.Year()
		}
		number, next := invoicing.GenerateInvoiceNumber(state, initials, issueDate)
		return number, next, year
	}
}

func (s *invoiceService) buildLines(ctx context.Context, invoiceID string, reqs []dto.CreateLineItemRequest) ([]domain.LineItem, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: an invoice needs at least one line", apperrors.ErrValidation)
	}

	lines := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		line := domain.LineItem{
			LineItemID:     uuid.NewString(),
			InvoiceID:      invoiceID,
			Position:       i + 1,
			Designation:    strings.TrimSpace(r.Designation),
			Quantity:       r.Quantity,
			UnitPrice:      r.Price(),
			OrderReference: r.OrderReference,
			OrderDate:      r.OrderDate,
		}

		if r.ProductID != nil && *r.ProductID != "" {
			product, err := s.productRepo.FindProductByID(ctx, *r.ProductID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: line %d: product %s does not exist", apperrors.ErrValidation, i+1, *r.ProductID)
				}
				return nil, fmt.Errorf("failed to load product %s: %w", *r.ProductID, err)
			}
			if line.Designation == "" {
				line.Designation = product.Designation
			}
			if r.UnitPrice == nil {
				line.UnitPrice = product.UnitPrice
			}
		}

		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines[i] = line
	}
	return lines, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s in service: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit, _ := normalizePage(params.Limit, 0)

	if params.NextToken != nil && *params.NextToken != "" {
		if _, _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: invalid next token: %v", apperrors.ErrValidation, err)
		}
	} else {
		params.NextToken = nil
	}

	filter := portsrepo.InvoiceFilter{ClientID: params.ClientID}
	if params.Status != nil && *params.Status != "" {
		status := domain.InvoiceStatus(*params.Status)
		filter.Status = &status
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, filter, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}

	resp := &dto.ListInvoicesResponse{
		Invoices:  make([]dto.InvoiceResponse, 0, len(invoices)),
		NextToken: nextToken,
	}
	for i := range invoices {
		resp.Invoices = append(resp.Invoices, dto.ToInvoiceResponse(&invoices[i], s.remember(&invoices[i])))
	}
	return resp, nil
}

func (s *invoiceService) GetInvoiceTotals(ctx context.Context, invoiceID string) (domain.InvoiceTotals, error) {
	if s.totals != nil {
		if totals, ok := s.totals.Get(invoiceID); ok {
			s.LogDebug(ctx, "Invoice totals served from cache", slog.String("invoice_id", invoiceID))
			return totals, nil
		}
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return domain.InvoiceTotals{}, fmt.Errorf("failed to get invoice %s for totals: %w", invoiceID, err)
	}
	return s.remember(invoice), nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, actor string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s for payment: %w", invoiceID, err)
	}

	paid, err := domain.ApplyPayment(*invoice, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	return s.persistStatus(ctx, paid, actor)
}

func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s for cancellation: %w", invoiceID, err)
	}

	cancelled, err := domain.Cancel(*invoice)
	if err != nil {
		return nil, err
	}
	return s.persistStatus(ctx, cancelled, actor)
}

func (s *invoiceService) persistStatus(ctx context.Context, invoice domain.Invoice, actor string) (*domain.Invoice, error) {
	invoice.Touch(actor, s.now().UTC())

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("status", string(invoice.Status)))
		return nil, fmt.Errorf("failed to update invoice status in service: %w", err)
	}
	if s.totals != nil {
		s.totals.Remove(invoice.InvoiceID)
	}

	s.LogInfo(ctx, "Invoice status changed",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("status", string(invoice.Status)))
	return &invoice, nil
}

// remember computes the totals of an invoice and memoizes them.
func (s *invoiceService) remember(invoice *domain.Invoice) domain.InvoiceTotals {
	totals := invoicing.ComputeInvoiceTotals(*invoice)
	if s.totals != nil {
		s.totals.Add(invoice.InvoiceID, totals)
	}
	return totals
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
