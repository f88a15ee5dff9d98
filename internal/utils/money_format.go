package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places used for euro amounts.
const AmountPrecision = 2

// FormatAmount formats an amount with euro cent precision.
// Example: 12.3456 returns "12.35", 7 returns "7.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountPrecision)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
