package invoicing

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotals derives subtotal, tax, discount and total due from invoice lines.
// Tax is applied to the subtotal, then the discount is applied to subtotal+tax.
// Rates are percentages and are not range-checked: negative or >100 values
// propagate into the result.
func ComputeTotals(lines []domain.LineItem, taxRatePercent, discountPercent decimal.Decimal) domain.InvoiceTotals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	taxAmount := subtotal.Mul(taxRatePercent.Shift(-2))
	gross := subtotal.Add(taxAmount)
	discountAmount := gross.Mul(discountPercent.Shift(-2))

	return domain.InvoiceTotals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		TotalDue:       gross.Sub(discountAmount),
	}
}

// ComputeInvoiceTotals is ComputeTotals over a stored invoice.
func ComputeInvoiceTotals(inv domain.Invoice) domain.InvoiceTotals {
	return ComputeTotals(inv.Lines, inv.TaxRate, inv.DiscountRate)
}

// RoundTotals rounds every amount to the given number of decimal places.
func RoundTotals(t domain.InvoiceTotals, places int32) domain.InvoiceTotals {
	return domain.InvoiceTotals{
		Subtotal:       t.Subtotal.Round(places),
		TaxAmount:      t.TaxAmount.Round(places),
		DiscountAmount: t.DiscountAmount.Round(places),
		TotalDue:       t.TotalDue.Round(places),
	}
}
