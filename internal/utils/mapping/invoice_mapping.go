package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Lines are mapped separately.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:    d.InvoiceID,
		Number:       d.Number,
		ClientID:     d.ClientID,
		IssueDate:    d.IssueDate,
		DueDate:      d.DueDate,
		PaymentDate:  d.PaymentDate,
		Status:       models.InvoiceStatus(d.Status),
		TaxRate:      d.TaxRate,
		DiscountRate: d.DiscountRate,
		Notes:        nullableString(d.Notes),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice and its lines to a domain Invoice
func ToDomainInvoice(m models.Invoice, lines []models.InvoiceLine) domain.Invoice {
	return domain.Invoice{
		InvoiceID:    m.InvoiceID,
		Number:       m.Number,
		ClientID:     m.ClientID,
		IssueDate:    m.IssueDate,
		DueDate:      m.DueDate,
		PaymentDate:  m.PaymentDate,
		Status:       domain.InvoiceStatus(m.Status),
		TaxRate:      m.TaxRate,
		DiscountRate: m.DiscountRate,
		Notes:        derefString(m.Notes),
		Lines:        ToDomainLineItemSlice(lines),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceLine converts a domain LineItem to a model InvoiceLine
func ToModelInvoiceLine(d domain.LineItem) models.InvoiceLine {
	return models.InvoiceLine{
		LineItemID:     d.LineItemID,
		InvoiceID:      d.InvoiceID,
		Position:       d.Position,
		Designation:    d.Designation,
		Quantity:       d.Quantity,
		UnitPrice:      d.UnitPrice,
		OrderReference: d.OrderReference,
		OrderDate:      d.OrderDate,
	}
}

// ToDomainLineItem converts a model InvoiceLine to a domain LineItem
func ToDomainLineItem(m models.InvoiceLine) domain.LineItem {
	return domain.LineItem{
		LineItemID:     m.LineItemID,
		InvoiceID:      m.InvoiceID,
		Position:       m.Position,
		Designation:    m.Designation,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		OrderReference: m.OrderReference,
		OrderDate:      m.OrderDate,
	}
}

// ToDomainLineItemSlice converts a slice of model InvoiceLines to domain LineItems
func ToDomainLineItemSlice(ms []models.InvoiceLine) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
