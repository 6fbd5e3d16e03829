package utils

import (
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the display precision of a currency code.
// Example: 12.3456 with USD (precision 2) returns "12.35"
// Example: 12.3456 with JPY (precision 0) returns "12"
// Unknown codes fall back to two decimal places.
func FormatWithCurrencyPrecision(amount float64, currencyCode string) string {
	return FormatWithPrecision(amount, registry.Precision(currencyCode))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount float64, precision int) string {
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}
