package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Designation: d.Designation,
		Reference:   nullableString(d.Reference),
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Designation: m.Designation,
		Reference:   derefString(m.Reference),
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	if ms == nil {
		return []domain.Product{}
	}
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
