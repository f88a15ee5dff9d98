package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest describes one invoice line. When ProductID is set,
// an empty designation and an omitted unit price are taken from the product.
// An omitted unit price without a product is zero.
type CreateLineItemRequest struct {
	ProductID      *string          `json:"productID"`
	Designation    string           `json:"designation"`
	Quantity       decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice      *decimal.Decimal `json:"unitPrice"`
	OrderReference *string          `json:"orderReference"`
	OrderDate      *time.Time       `json:"orderDate"`
}

// Price returns the requested unit price, or zero when it was omitted.
func (r CreateLineItemRequest) Price() decimal.Decimal {
	if r.UnitPrice == nil {
		return decimal.Zero
	}
	return *r.UnitPrice
}

// CreateInvoiceRequest defines the data needed to issue an invoice.
// IssueDate defaults to today and DueDate to the configured payment term.
type CreateInvoiceRequest struct {
	ClientID     string                  `json:"clientID" binding:"required"`
	IssueDate    *time.Time              `json:"issueDate"`
	DueDate      *time.Time              `json:"dueDate"`
	TaxRate      decimal.Decimal         `json:"taxRate" binding:"taxrate"`
	DiscountRate decimal.Decimal         `json:"discountRate"`
	Notes        string                  `json:"notes"`
	Lines        []CreateLineItemRequest `json:"lines" binding:"required,min=1,dive"`
}

// RecordPaymentRequest marks an invoice as paid.
type RecordPaymentRequest struct {
	PaymentDate time.Time `json:"paymentDate" binding:"required"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	ClientID  *string `form:"clientID"`
	Status    *string `form:"status" binding:"omitempty,oneof=ISSUED PAID CANCELLED"`
}

// TotalsResponse carries derived amounts formatted to the cent.
type TotalsResponse struct {
	Subtotal       string `json:"subtotal"`
	TaxAmount      string `json:"taxAmount"`
	DiscountAmount string `json:"discountAmount"`
	TotalDue       string `json:"totalDue"`
}

// LineItemResponse defines the data returned for an invoice line.
type LineItemResponse struct {
	Position       int        `json:"position"`
	Designation    string     `json:"designation"`
	Quantity       string     `json:"quantity"`
	UnitPrice      string     `json:"unitPrice"`
	LineTotal      string     `json:"lineTotal"`
	OrderReference *string    `json:"orderReference,omitempty"`
	OrderDate      *time.Time `json:"orderDate,omitempty"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID    string               `json:"invoiceID"`
	Number       string               `json:"number"`
	ClientID     string               `json:"clientID"`
	IssueDate    time.Time            `json:"issueDate"`
	DueDate      time.Time            `json:"dueDate"`
	PaymentDate  *time.Time           `json:"paymentDate,omitempty"`
	Status       domain.InvoiceStatus `json:"status"`
	TaxRate      string               `json:"taxRate"`
	DiscountRate string               `json:"discountRate"`
	Notes        string               `json:"notes"`
	Lines        []LineItemResponse   `json:"lines"`
	Totals       TotalsResponse       `json:"totals"`
	CreatedAt    time.Time            `json:"createdAt"`
	CreatedBy    string               `json:"createdBy"`
}

// ListInvoicesResponse is a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToTotalsResponse converts domain.InvoiceTotals to TotalsResponse DTO
func ToTotalsResponse(t domain.InvoiceTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:       utils.FormatAmount(t.Subtotal),
		TaxAmount:      utils.FormatAmount(t.TaxAmount),
		DiscountAmount: utils.FormatAmount(t.DiscountAmount),
		TotalDue:       utils.FormatAmount(t.TotalDue),
	}
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO
func ToLineItemResponse(l domain.LineItem) LineItemResponse {
	return LineItemResponse{
		Position:       l.Position,
		Designation:    l.Designation,
		Quantity:       l.Quantity.String(),
		UnitPrice:      utils.FormatAmount(l.UnitPrice),
		LineTotal:      utils.FormatAmount(l.LineTotal()),
		OrderReference: l.OrderReference,
		OrderDate:      l.OrderDate,
	}
}

// ToInvoiceResponse converts a domain.Invoice and its totals to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice, totals domain.InvoiceTotals) InvoiceResponse {
	lines := make([]LineItemResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = ToLineItemResponse(l)
	}
	return InvoiceResponse{
		InvoiceID:    inv.InvoiceID,
		Number:       inv.Number,
		ClientID:     inv.ClientID,
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
		PaymentDate:  inv.PaymentDate,
		Status:       inv.Status,
		TaxRate:      inv.TaxRate.String(),
		DiscountRate: inv.DiscountRate.String(),
		Notes:        inv.Notes,
		Lines:        lines,
		Totals:       ToTotalsResponse(totals),
		CreatedAt:    inv.CreatedAt,
		CreatedBy:    inv.CreatedBy,
	}
}
