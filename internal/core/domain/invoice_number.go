package domain

import "github.com/shopspring/decimal"

// InvoiceTotals are derived from an invoice's lines and rates. They are never stored.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalDue       decimal.Decimal `json:"totalDue"`
}

// InvoiceNumberState is the issuing company's invoice sequence counter.
type InvoiceNumberState struct {
	NextSequence int    `json:"nextSequence"`
	Prefix       string `json:"prefix"`
}
