package domain

import "github.com/shopspring/decimal"

// Product is a catalogue entry used to prefill invoice lines.
type Product struct {
	ProductID   string          `json:"productID"`
	Designation string          `json:"designation"`
	Reference   string          `json:"reference"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	AuditFields
}
