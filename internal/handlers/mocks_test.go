package handlers_test

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, actor string) (*domain.Client, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actor string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*domain.Product, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Mock EnterpriseService ---
type MockEnterpriseService struct {
	mock.Mock
}

func (m *MockEnterpriseService) GetEnterprise(ctx context.Context) (*domain.Enterprise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

func (m *MockEnterpriseService) UpdateEnterprise(ctx context.Context, req dto.UpdateEnterpriseRequest, actor string) (*domain.Enterprise, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

func (m *MockEnterpriseService) ResetSequence(ctx context.Context, actor string) (*domain.Enterprise, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesResponse), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceTotals(ctx context.Context, invoiceID string) (domain.InvoiceTotals, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(domain.InvoiceTotals), args.Error(1)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, actor string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, actor string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) CancelInvoice(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock StatisticsService ---
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) GetYearStatistics(ctx context.Context, year int, topClients int) (*domain.YearStatistics, error) {
	args := m.Called(ctx, year, topClients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearStatistics), args.Error(1)
}

// --- Mock ToolsService ---
type MockToolsService struct {
	mock.Mock
}

func (m *MockToolsService) ValidateIdentifier(ctx context.Context, req dto.ValidateIdentifierRequest) (dto.ValidateIdentifierResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ValidateIdentifierResponse), args.Error(1)
}

func (m *MockToolsService) PreviewTotals(ctx context.Context, req dto.PreviewTotalsRequest) (domain.InvoiceTotals, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.InvoiceTotals), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.ClientSvcFacade     = (*MockClientService)(nil)
	_ portssvc.ProductSvcFacade    = (*MockProductService)(nil)
	_ portssvc.EnterpriseSvcFacade = (*MockEnterpriseService)(nil)
	_ portssvc.InvoiceSvcFacade    = (*MockInvoiceService)(nil)
	_ portssvc.StatisticsService   = (*MockStatisticsService)(nil)
	_ portssvc.ToolsService        = (*MockToolsService)(nil)
)
