package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientMapping_EmptyIdentifiersBecomeNull(t *testing.T) {
	m := ToModelClient(domain.Client{ClientID: "c1", ContactName: "Jane", SIRET: "  "})
	assert.Nil(t, m.CompanyName)
	assert.Nil(t, m.SIRET)
	if assert.NotNil(t, m.ContactName) {
		assert.Equal(t, "Jane", *m.ContactName)
	}

	back := ToDomainClient(m)
	assert.Equal(t, "", back.CompanyName)
	assert.Equal(t, "Jane", back.ContactName)
}

func TestEnterpriseMapping_CarriesSequence(t *testing.T) {
	m := models.Enterprise{EnterpriseID: "e1", Name: "Me", NextInvoiceNumber: 12, InvoicePrefix: "F", InvoiceNumberYear: 2025}
	d := ToDomainEnterprise(m)
	assert.Equal(t, domain.InvoiceNumberState{NextSequence: 12, Prefix: "F"}, d.Sequence)
	assert.Equal(t, 2025, d.SequenceYear)
	assert.Equal(t, m, ToModelEnterprise(d))
}

func TestInvoiceMapping_WithLines(t *testing.T) {
	issued := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	m := models.Invoice{
		InvoiceID: "i1",
		Number:    "01/25-0001-A",
		IssueDate: issued,
		Status:    models.InvoiceStatus(domain.InvoiceIssued),
		TaxRate:   decimal.NewFromInt(20),
	}
	lines := []models.InvoiceLine{{LineItemID: "l1", InvoiceID: "i1", Designation: "A", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)}}

	d := ToDomainInvoice(m, lines)
	assert.Equal(t, domain.InvoiceIssued, d.Status)
	assert.Len(t, d.Lines, 1)
	assert.Equal(t, "A", d.Lines[0].Designation)
	assert.Equal(t, lines[0], ToModelInvoiceLine(d.Lines[0]))

	assert.NotNil(t, ToDomainInvoice(m, nil).Lines)
}
