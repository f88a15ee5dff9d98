package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/core/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoiceRepo *MockInvoiceRepository
	clientRepo  *MockClientRepository
	productRepo *MockProductRepository
	service     portssvc.InvoiceSvcFacade
	now         time.Time
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.invoiceRepo = new(MockInvoiceRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.productRepo = new(MockProductRepository)
	suite.now = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewInvoiceService(
		suite.invoiceRepo,
		suite.clientRepo,
		suite.productRepo,
		services.WithPaymentTermDays(30),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *InvoiceServiceTestSuite) acmeClient() *domain.Client {
	return &domain.Client{ClientID: "client-1", CompanyName: "Acme", ContactName: "Bob Martin"}
}

func (suite *InvoiceServiceTestSuite) basicRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID: "client-1",
		TaxRate:  decimal.NewFromInt(20),
		Lines: []dto.CreateLineItemRequest{
			{Designation: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: priceOf("15.50")},
		},
	}
}

// expectCreate runs the number assigner against enterprise, the way the
// repository does inside its transaction, and returns the stored invoice.
func (suite *InvoiceServiceTestSuite) expectCreate(enterprise domain.Enterprise) (*domain.Invoice, *domain.InvoiceNumberState, *int) {
	stored := &domain.Invoice{}
	var sequence domain.InvoiceNumberState
	var year int
	suite.invoiceRepo.On("CreateInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice"), mock.Anything).
		Run(func(args mock.Arguments) {
			inv := args.Get(1).(domain.Invoice)
			assign := args.Get(2).(portsrepo.NumberAssigner)
			inv.Number, sequence, year = assign(enterprise)
			*stored = inv
		}).
		Return(stored, nil).Once()
	return stored, &sequence, &year
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AssignsNumberAndDefaults() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()
	_, sequence, year := suite.expectCreate(domain.Enterprise{
		Sequence:     domain.InvoiceNumberState{NextSequence: 7},
		SequenceYear: 2026,
	})

	invoice, err := suite.service.CreateInvoice(ctx, suite.basicRequest(), "alice")

	suite.Require().NoError(err)
	suite.Equal("03/26-0007-AB", invoice.Number)
	suite.Equal(domain.InvoiceIssued, invoice.Status)
	suite.Equal(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), invoice.IssueDate)
	suite.Equal(time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC), invoice.DueDate)
	suite.Require().Len(invoice.Lines, 1)
	suite.Equal(1, invoice.Lines[0].Position)
	suite.Equal(invoice.InvoiceID, invoice.Lines[0].InvoiceID)
	suite.Equal(8, sequence.NextSequence)
	suite.Equal(2026, *year)
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NewYearRestartsSequence() {
	ctx := context.Background()
	issue := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
	req := suite.basicRequest()
	req.IssueDate = &issue

	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()
	_, sequence, year := suite.expectCreate(domain.Enterprise{
		Sequence:     domain.InvoiceNumberState{NextSequence: 57, Prefix: "F"},
		SequenceYear: 2026,
	})

	invoice, err := suite.service.CreateInvoice(ctx, req, "alice")

	suite.Require().NoError(err)
	suite.Equal("F01/27-0001-AB", invoice.Number)
	suite.Equal(domain.InvoiceNumberState{NextSequence: 2, Prefix: "F"}, *sequence)
	suite.Equal(2027, *year)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BackdatedKeepsSequence() {
	ctx := context.Background()
	issue := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	req := suite.basicRequest()
	req.IssueDate = &issue

	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()
	_, sequence, year := suite.expectCreate(domain.Enterprise{
		Sequence:     domain.InvoiceNumberState{NextSequence: 10},
		SequenceYear: 2026,
	})

	invoice, err := suite.service.CreateInvoice(ctx, req, "alice")

	suite.Require().NoError(err)
	suite.Equal("12/25-0010-AB", invoice.Number)
	suite.Equal(11, sequence.NextSequence)
	suite.Equal(2026, *year)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PrefillsFromProduct() {
	ctx := context.Background()
	productID := "prod-1"
	req := suite.basicRequest()
	req.Lines = []dto.CreateLineItemRequest{{ProductID: &productID, Quantity: decimal.NewFromInt(3)}}

	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()
	suite.productRepo.On("FindProductByID", ctx, productID).Return(&domain.Product{
		ProductID:   productID,
		Designation: "Support hour",
		UnitPrice:   decimal.NewFromInt(80),
	}, nil).Once()
	suite.expectCreate(domain.Enterprise{Sequence: domain.InvoiceNumberState{NextSequence: 1}, SequenceYear: 2026})

	invoice, err := suite.service.CreateInvoice(ctx, req, "alice")

	suite.Require().NoError(err)
	suite.Equal("Support hour", invoice.Lines[0].Designation)
	suite.True(invoice.Lines[0].UnitPrice.Equal(decimal.NewFromInt(80)))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExplicitZeroPriceKeepsProductLineFree() {
	ctx := context.Background()
	productID := "prod-1"
	req := suite.basicRequest()
	req.Lines = []dto.CreateLineItemRequest{
		{ProductID: &productID, Quantity: decimal.NewFromInt(1), UnitPrice: priceOf("0")},
		{ProductID: &productID, Quantity: decimal.NewFromInt(2)},
	}

	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()
	suite.productRepo.On("FindProductByID", ctx, productID).Return(&domain.Product{
		ProductID:   productID,
		Designation: "Support hour",
		UnitPrice:   decimal.NewFromInt(80),
	}, nil).Twice()
	suite.expectCreate(domain.Enterprise{Sequence: domain.InvoiceNumberState{NextSequence: 1}, SequenceYear: 2026})

	invoice, err := suite.service.CreateInvoice(ctx, req, "alice")

	suite.Require().NoError(err)
	suite.Require().Len(invoice.Lines, 2)
	suite.True(invoice.Lines[0].UnitPrice.IsZero(), "an explicit zero price is kept")
	suite.Equal("Support hour", invoice.Lines[0].Designation)
	suite.True(invoice.Lines[1].UnitPrice.Equal(decimal.NewFromInt(80)), "an omitted price comes from the product")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Rejections() {
	ctx := context.Background()
	early := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
	}{
		{"tax rate outside allowed set", func(r *dto.CreateInvoiceRequest) { r.TaxRate = decimal.NewFromInt(19) }},
		{"negative discount", func(r *dto.CreateInvoiceRequest) { r.DiscountRate = decimal.NewFromInt(-5) }},
		{"discount above 100", func(r *dto.CreateInvoiceRequest) { r.DiscountRate = decimal.NewFromInt(101) }},
		{"due before issue", func(r *dto.CreateInvoiceRequest) { r.DueDate = &early }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.basicRequest()
			tt.mutate(&req)
			invoice, err := suite.service.CreateInvoice(ctx, req, "alice")
			suite.Nil(invoice)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.invoiceRepo.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InvalidLine() {
	ctx := context.Background()
	req := suite.basicRequest()
	req.Lines[0].Quantity = decimal.Zero
	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "line 1")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownClient() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.basicRequest(), "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RepoError() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, "client-1").Return(suite.acmeClient(), nil).Once()
	suite.invoiceRepo.On("CreateInvoice", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.basicRequest(), "alice")

	suite.Nil(invoice)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *InvoiceServiceTestSuite) storedInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID: "inv-1",
		Number:    "03/26-0001-AB",
		IssueDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.InvoiceIssued,
		TaxRate:   decimal.NewFromInt(20),
		Lines: []domain.LineItem{
			{Designation: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("15.50")},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceTotals_Memoized() {
	ctx := context.Background()
	suite.invoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.storedInvoice(), nil).Once()

	first, err := suite.service.GetInvoiceTotals(ctx, "inv-1")
	suite.Require().NoError(err)
	second, err := suite.service.GetInvoiceTotals(ctx, "inv-1")
	suite.Require().NoError(err)

	suite.True(first.Subtotal.Equal(decimal.NewFromInt(31)))
	suite.True(first.TaxAmount.Equal(decimal.RequireFromString("6.2")))
	suite.True(first.TotalDue.Equal(decimal.RequireFromString("37.2")))
	suite.Equal(first, second)
	suite.invoiceRepo.AssertNumberOfCalls(suite.T(), "FindInvoiceByID", 1)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceTotals_NotFound() {
	ctx := context.Background()
	suite.invoiceRepo.On("FindInvoiceByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetInvoiceTotals(ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice_InvalidatesTotals() {
	ctx := context.Background()
	suite.invoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.storedInvoice(), nil).Times(3)
	suite.invoiceRepo.On("UpdateInvoiceStatus", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoiceCancelled && inv.LastUpdatedBy == "bob"
	})).Return(nil).Once()

	_, err := suite.service.GetInvoiceTotals(ctx, "inv-1")
	suite.Require().NoError(err)

	cancelled, err := suite.service.CancelInvoice(ctx, "inv-1", "bob")
	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceCancelled, cancelled.Status)

	_, err = suite.service.GetInvoiceTotals(ctx, "inv-1")
	suite.Require().NoError(err)
	suite.invoiceRepo.AssertNumberOfCalls(suite.T(), "FindInvoiceByID", 3)
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	paidOn := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	suite.invoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.storedInvoice(), nil).Once()
	suite.invoiceRepo.On("UpdateInvoiceStatus", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoicePaid && inv.PaymentDate != nil && inv.PaymentDate.Equal(paidOn)
	})).Return(nil).Once()

	invoice, err := suite.service.RecordPayment(ctx, "inv-1", dto.RecordPaymentRequest{PaymentDate: paidOn}, "bob")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_AlreadyPaid() {
	ctx := context.Background()
	paid := suite.storedInvoice()
	paid.Status = domain.InvoicePaid
	suite.invoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(paid, nil).Once()

	_, err := suite.service.RecordPayment(ctx, "inv-1", dto.RecordPaymentRequest{PaymentDate: suite.now}, "bob")

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices() {
	ctx := context.Background()
	status := "ISSUED"
	clientID := "client-1"
	next := "next-page"
	stored := *suite.storedInvoice()

	suite.invoiceRepo.On("ListInvoices", ctx, mock.MatchedBy(func(f portsrepo.InvoiceFilter) bool {
		return f.Status != nil && *f.Status == domain.InvoiceIssued && f.ClientID != nil && *f.ClientID == clientID
	}), 20, (*string)(nil)).Return([]domain.Invoice{stored}, &next, nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Status: &status, ClientID: &clientID})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Invoices, 1)
	suite.Equal("37.20", resp.Invoices[0].Totals.TotalDue)
	suite.Equal(&next, resp.NextToken)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_TokenRoundTrip() {
	ctx := context.Background()
	token := pagination.EncodeToken(suite.now, suite.now)
	suite.invoiceRepo.On("ListInvoices", ctx, portsrepo.InvoiceFilter{}, 20, &token).Return([]domain.Invoice{}, nil, nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{NextToken: &token})

	suite.Require().NoError(err)
	suite.Empty(resp.Invoices)
	suite.Nil(resp.NextToken)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_BadToken() {
	bad := "%%%"

	_, err := suite.service.ListInvoices(context.Background(), dto.ListInvoicesParams{NextToken: &bad})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
