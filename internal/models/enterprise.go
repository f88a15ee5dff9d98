package models

// Enterprise is the single row of the enterprise table, counter included.
type Enterprise struct {
	EnterpriseID      string  `db:"enterprise_id"`
	Name              string  `db:"name"`
	Address           *string `db:"address"`
	Email             *string `db:"email"`
	Phone             *string `db:"phone"`
	SIRET             *string `db:"siret"`
	VATNumber         *string `db:"vat_number"`
	IBAN              *string `db:"iban"`
	BIC               *string `db:"bic"`
	NextInvoiceNumber int     `db:"next_invoice_number"`
	InvoicePrefix     string  `db:"invoice_prefix"`
	InvoiceNumberYear int     `db:"invoice_number_year"`
	AuditFields
}
