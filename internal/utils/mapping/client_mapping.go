package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		CompanyName: nullableString(d.CompanyName),
		ContactName: nullableString(d.ContactName),
		Email:       nullableString(d.Email),
		Phone:       nullableString(d.Phone),
		Address:     nullableString(d.Address),
		SIRET:       nullableString(d.SIRET),
		VATNumber:   nullableString(d.VATNumber),
		IBAN:        nullableString(d.IBAN),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		CompanyName: derefString(m.CompanyName),
		ContactName: derefString(m.ContactName),
		Email:       derefString(m.Email),
		Phone:       derefString(m.Phone),
		Address:     derefString(m.Address),
		SIRET:       derefString(m.SIRET),
		VATNumber:   derefString(m.VATNumber),
		IBAN:        derefString(m.IBAN),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	if ms == nil {
		return []domain.Client{}
	}
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
