package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LineItem is a single billed line on an invoice.
type LineItem struct {
	LineItemID     string          `json:"lineItemID"`
	InvoiceID      string          `json:"invoiceID"`
	Position       int             `json:"position"`
	Designation    string          `json:"designation"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	OrderReference *string         `json:"orderReference,omitempty"`
	OrderDate      *time.Time      `json:"orderDate,omitempty"`
}

// LineTotal returns quantity × unit price.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Validate checks that the line can be billed.
func (l LineItem) Validate() error {
	if strings.TrimSpace(l.Designation) == "" {
		return fmt.Errorf("%w: line designation is required", apperrors.ErrValidation)
	}
	if !l.Quantity.IsPositive() {
		return fmt.Errorf("%w: line quantity must be positive", apperrors.ErrValidation)
	}
	if l.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: line unit price must not be negative", apperrors.ErrValidation)
	}
	return nil
}
