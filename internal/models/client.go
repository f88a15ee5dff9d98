package models

// Client is the row stored in the clients table. Optional identifiers are nullable.
type Client struct {
	ClientID    string  `db:"client_id"`
	CompanyName *string `db:"company_name"`
	ContactName *string `db:"contact_name"`
	Email       *string `db:"email"`
	Phone       *string `db:"phone"`
	Address     *string `db:"address"`
	SIRET       *string `db:"siret"`
	VATNumber   *string `db:"vat_number"`
	IBAN        *string `db:"iban"`
	AuditFields
}
