package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelEnterprise converts a domain Enterprise to a model Enterprise
func ToModelEnterprise(d domain.Enterprise) models.Enterprise {
	return models.Enterprise{
		EnterpriseID:      d.EnterpriseID,
		Name:              d.Name,
		Address:           nullableString(d.Address),
		Email:             nullableString(d.Email),
		Phone:             nullableString(d.Phone),
		SIRET:             nullableString(d.SIRET),
		VATNumber:         nullableString(d.VATNumber),
		IBAN:              nullableString(d.IBAN),
		BIC:               nullableString(d.BIC),
		NextInvoiceNumber: d.Sequence.NextSequence,
		InvoicePrefix:     d.Sequence.Prefix,
		InvoiceNumberYear: d.SequenceYear,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEnterprise converts a model Enterprise to a domain Enterprise
func ToDomainEnterprise(m models.Enterprise) domain.Enterprise {
	return domain.Enterprise{
		EnterpriseID: m.EnterpriseID,
		Name:         m.Name,
		Address:      derefString(m.Address),
		Email:        derefString(m.Email),
		Phone:        derefString(m.Phone),
		SIRET:        derefString(m.SIRET),
		VATNumber:    derefString(m.VATNumber),
		IBAN:         derefString(m.IBAN),
		BIC:          derefString(m.BIC),
		Sequence: domain.InvoiceNumberState{
			NextSequence: m.NextInvoiceNumber,
			Prefix:       m.InvoicePrefix,
		},
		SequenceYear: m.InvoiceNumberYear,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
