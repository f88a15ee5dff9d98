package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTaxRates are the French VAT rates, in percent.
var DefaultTaxRates = []decimal.Decimal{
	decimal.Zero,
	decimal.RequireFromString("2.1"),
	decimal.RequireFromString("5.5"),
	decimal.NewFromInt(10),
	decimal.NewFromInt(20),
}

// TaxRateSet is the configured list of VAT rates an invoice or product may use.
type TaxRateSet struct {
	rates []decimal.Decimal
}

// NewTaxRateSet builds a set from explicit rates. With no rates it falls back to DefaultTaxRates.
func NewTaxRateSet(rates ...decimal.Decimal) TaxRateSet {
	if len(rates) == 0 {
		rates = DefaultTaxRates
	}
	return TaxRateSet{rates: append([]decimal.Decimal(nil), rates...)}
}

// ParseTaxRateSet reads a comma separated list such as "0,2.1,5.5,10,20".
func ParseTaxRateSet(csv string) (TaxRateSet, error) {
	var rates []decimal.Decimal
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rate, err := decimal.NewFromString(part)
		if err != nil {
			return TaxRateSet{}, fmt.Errorf("invalid tax rate %q: %w", part, err)
		}
		rates = append(rates, rate)
	}
	if len(rates) == 0 {
		return TaxRateSet{}, fmt.Errorf("tax rate list %q is empty", csv)
	}
	return NewTaxRateSet(rates...), nil
}

// IsValidTaxRate reports whether rate is one of the allowed rates. 5.50 and 5.5 compare equal.
func (s TaxRateSet) IsValidTaxRate(rate decimal.Decimal) bool {
	for _, allowed := range s.rates {
		if allowed.Equal(rate) {
			return true
		}
	}
	return false
}

// Rates returns a copy of the allowed rates.
func (s TaxRateSet) Rates() []decimal.Decimal {
	return append([]decimal.Decimal(nil), s.rates...)
}

func (s TaxRateSet) String() string {
	parts := make([]string, len(s.rates))
	for i, r := range s.rates {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
