package domain

import "strings"

// Client is a billed customer. CompanyName is empty for private individuals.
type Client struct {
	ClientID    string `json:"clientID"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	SIRET       string `json:"siret"`
	VATNumber   string `json:"vatNumber"`
	IBAN        string `json:"iban"`
	AuditFields
}

// DisplayName prefers the company name.
func (c Client) DisplayName() string {
	if name := strings.TrimSpace(c.CompanyName); name != "" {
		return name
	}
	return strings.TrimSpace(c.ContactName)
}
