package models

import "github.com/shopspring/decimal"

// Product is the row stored in the products table.
type Product struct {
	ProductID   string          `db:"product_id"`
	Designation string          `db:"designation"`
	Reference   *string         `db:"reference"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	AuditFields
}
