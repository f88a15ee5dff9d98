package invoicing

import (
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(designation string, qty int64, price string) domain.LineItem {
	return domain.LineItem{
		Designation: designation,
		Quantity:    decimal.NewFromInt(qty),
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.LineItem
		taxRate      string
		discountRate string
		subtotal     string
		tax          string
		discount     string
		totalDue     string
	}{
		{
			name:         "three lines at 20% without discount",
			lines:        []domain.LineItem{line("A", 2, "10.0"), line("B", 1, "5.0"), line("C", 3, "2.0")},
			taxRate:      "20",
			discountRate: "0",
			subtotal:     "31.0",
			tax:          "6.2",
			discount:     "0",
			totalDue:     "37.2",
		},
		{
			name:         "discount applies after tax",
			lines:        []domain.LineItem{line("A", 1, "100")},
			taxRate:      "20",
			discountRate: "10",
			subtotal:     "100",
			tax:          "20",
			discount:     "12",
			totalDue:     "108",
		},
		{
			name:         "reduced rate",
			lines:        []domain.LineItem{line("Book", 4, "12.50")},
			taxRate:      "5.5",
			discountRate: "0",
			subtotal:     "50",
			tax:          "2.75",
			discount:     "0",
			totalDue:     "52.75",
		},
		{
			name:         "empty invoice",
			lines:        nil,
			taxRate:      "20",
			discountRate: "15",
			subtotal:     "0",
			tax:          "0",
			discount:     "0",
			totalDue:     "0",
		},
		{
			name:         "negative rates propagate",
			lines:        []domain.LineItem{line("A", 1, "100")},
			taxRate:      "-10",
			discountRate: "0",
			subtotal:     "100",
			tax:          "-10",
			discount:     "0",
			totalDue:     "90",
		},
		{
			name:         "discount above 100 yields a negative total",
			lines:        []domain.LineItem{line("A", 1, "100")},
			taxRate:      "0",
			discountRate: "150",
			subtotal:     "100",
			tax:          "0",
			discount:     "150",
			totalDue:     "-50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, decimal.RequireFromString(tt.taxRate), decimal.RequireFromString(tt.discountRate))
			assertDecimal(t, tt.subtotal, got.Subtotal, "subtotal")
			assertDecimal(t, tt.tax, got.TaxAmount, "tax")
			assertDecimal(t, tt.discount, got.DiscountAmount, "discount")
			assertDecimal(t, tt.totalDue, got.TotalDue, "totalDue")
		})
	}
}

func TestComputeTotals_KeepsRatePrecision(t *testing.T) {
	lines := []domain.LineItem{line("A", 1, "100")}

	got := ComputeTotals(lines, decimal.RequireFromString("0.00000000000000001"), decimal.RequireFromString("0.00000000000000005"))

	assertDecimal(t, "0.00000000000000001", got.TaxAmount, "tax")
	assertDecimal(t, "0.000000000000000050000000000000000005", got.DiscountAmount, "discount")
	assertDecimal(t, "100.00000000000000001", got.Subtotal.Add(got.TaxAmount), "gross")
}

func TestComputeTotals_IsDeterministic(t *testing.T) {
	lines := []domain.LineItem{line("A", 3, "19.99"), line("B", 7, "0.33")}
	tax := decimal.RequireFromString("20")
	discount := decimal.RequireFromString("7.5")

	first := ComputeTotals(lines, tax, discount)
	for i := 0; i < 10; i++ {
		again := ComputeTotals(lines, tax, discount)
		assert.True(t, first.TotalDue.Equal(again.TotalDue))
		assert.True(t, first.TaxAmount.Equal(again.TaxAmount))
	}
}

func TestComputeTotals_BoundedForValidRates(t *testing.T) {
	lines := []domain.LineItem{line("A", 3, "19.99"), line("B", 7, "0.33"), line("C", 1, "0")}
	for _, taxRate := range []int64{0, 2, 10, 20, 100} {
		for _, discountRate := range []int64{0, 1, 50, 99, 100} {
			tax := decimal.NewFromInt(taxRate)
			got := ComputeTotals(lines, tax, decimal.NewFromInt(discountRate))
			ceiling := got.Subtotal.Mul(decimal.NewFromInt(1).Add(tax.Div(decimal.NewFromInt(100))))

			assert.False(t, got.TotalDue.IsNegative(), "tax=%d discount=%d", taxRate, discountRate)
			assert.True(t, got.TotalDue.LessThanOrEqual(ceiling), "tax=%d discount=%d", taxRate, discountRate)
		}
	}
}

func TestComputeInvoiceTotalsAndRounding(t *testing.T) {
	inv := domain.Invoice{
		Lines:        []domain.LineItem{line("A", 3, "0.335")},
		TaxRate:      decimal.RequireFromString("20"),
		DiscountRate: decimal.Zero,
	}
	totals := ComputeInvoiceTotals(inv)
	assertDecimal(t, "1.005", totals.Subtotal, "subtotal")

	rounded := RoundTotals(totals, 2)
	assertDecimal(t, "1.01", rounded.Subtotal, "subtotal")
	assertDecimal(t, "0.2", rounded.TaxAmount, "tax")
	assertDecimal(t, "1.21", rounded.TotalDue, "totalDue")
}
