package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is stored as text.
type InvoiceStatus string

// Invoice is the row stored in the invoices table. Lines live in invoice_lines.
type Invoice struct {
	InvoiceID    string          `db:"invoice_id"`
	Number       string          `db:"number"`
	ClientID     string          `db:"client_id"`
	IssueDate    time.Time       `db:"issue_date"`
	DueDate      time.Time       `db:"due_date"`
	PaymentDate  *time.Time      `db:"payment_date"`
	Status       InvoiceStatus   `db:"status"`
	TaxRate      decimal.Decimal `db:"tax_rate"`
	DiscountRate decimal.Decimal `db:"discount_rate"`
	Notes        *string         `db:"notes"`
	AuditFields
}

// InvoiceLine is a row of invoice_lines.
type InvoiceLine struct {
	LineItemID     string          `db:"line_item_id"`
	InvoiceID      string          `db:"invoice_id"`
	Position       int             `db:"position"`
	Designation    string          `db:"designation"`
	Quantity       decimal.Decimal `db:"quantity"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	OrderReference *string         `db:"order_reference"`
	OrderDate      *time.Time      `db:"order_date"`
}
