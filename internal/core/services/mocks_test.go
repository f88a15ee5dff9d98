package services_test

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

// --- Mock EnterpriseRepository ---
type MockEnterpriseRepository struct {
	mock.Mock
}

func (m *MockEnterpriseRepository) FindEnterprise(ctx context.Context) (*domain.Enterprise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

func (m *MockEnterpriseRepository) SaveEnterprise(ctx context.Context, enterprise domain.Enterprise) error {
	return m.Called(ctx, enterprise).Error(0)
}

func (m *MockEnterpriseRepository) UpdateSequence(ctx context.Context, sequence domain.InvoiceNumberState, sequenceYear int, updatedBy string) error {
	return m.Called(ctx, sequence, sequenceYear, updatedBy).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceFilter, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invoices, token, args.Error(2)
}

func (m *MockInvoiceRepository) ListInvoicesByYear(ctx context.Context, year int) ([]domain.Invoice, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, assign portsrepo.NumberAssigner) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice, assign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

var (
	_ portsrepo.ClientRepositoryFacade     = (*MockClientRepository)(nil)
	_ portsrepo.ProductRepositoryFacade    = (*MockProductRepository)(nil)
	_ portsrepo.EnterpriseRepositoryFacade = (*MockEnterpriseRepository)(nil)
	_ portsrepo.InvoiceRepositoryWithTx    = (*MockInvoiceRepository)(nil)
)

func priceOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
