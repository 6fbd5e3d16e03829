// Package registry holds the static catalog of currencies the ledger knows about.
// It is reference data only: nothing here is user configurable.
package registry

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// DefaultBaseCode is the base currency created on first run unless configuration overrides it.
const DefaultBaseCode = "USD"

var catalog = []domain.CurrencyDefinition{
	{Code: "USD", DisplayName: "US Dollar", Symbol: "$", Emoji: "🇺🇸", Region: "United States", Precision: 2},
	{Code: "EUR", DisplayName: "Euro", Symbol: "€", Emoji: "🇪🇺", Region: "Eurozone", Precision: 2},
	{Code: "GBP", DisplayName: "British Pound", Symbol: "£", Emoji: "🇬🇧", Region: "United Kingdom", Precision: 2},
	{Code: "JPY", DisplayName: "Japanese Yen", Symbol: "¥", Emoji: "🇯🇵", Region: "Japan", Precision: 0},
	{Code: "CNY", DisplayName: "Chinese Yuan", Symbol: "¥", Emoji: "🇨🇳", Region: "China", Precision: 2},
	{Code: "INR", DisplayName: "Indian Rupee", Symbol: "₹", Emoji: "🇮🇳", Region: "India", Precision: 2},
	{Code: "MXN", DisplayName: "Mexican Peso", Symbol: "$", Emoji: "🇲🇽", Region: "Mexico", Precision: 2},
	{Code: "CAD", DisplayName: "Canadian Dollar", Symbol: "$", Emoji: "🇨🇦", Region: "Canada", Precision: 2},
	{Code: "AUD", DisplayName: "Australian Dollar", Symbol: "$", Emoji: "🇦🇺", Region: "Australia", Precision: 2},
	{Code: "CHF", DisplayName: "Swiss Franc", Symbol: "Fr", Emoji: "🇨🇭", Region: "Switzerland", Precision: 2},
	{Code: "BRL", DisplayName: "Brazilian Real", Symbol: "R$", Emoji: "🇧🇷", Region: "Brazil", Precision: 2},
	{Code: "ARS", DisplayName: "Argentine Peso", Symbol: "$", Emoji: "🇦🇷", Region: "Argentina", Precision: 2},
	{Code: "CLP", DisplayName: "Chilean Peso", Symbol: "$", Emoji: "🇨🇱", Region: "Chile", Precision: 0},
	{Code: "COP", DisplayName: "Colombian Peso", Symbol: "$", Emoji: "🇨🇴", Region: "Colombia", Precision: 2},
	{Code: "PEN", DisplayName: "Peruvian Sol", Symbol: "S/", Emoji: "🇵🇪", Region: "Peru", Precision: 2},
	{Code: "KRW", DisplayName: "South Korean Won", Symbol: "₩", Emoji: "🇰🇷", Region: "South Korea", Precision: 0},
	{Code: "SEK", DisplayName: "Swedish Krona", Symbol: "kr", Emoji: "🇸🇪", Region: "Sweden", Precision: 2},
	{Code: "NOK", DisplayName: "Norwegian Krone", Symbol: "kr", Emoji: "🇳🇴", Region: "Norway", Precision: 2},
	{Code: "PLN", DisplayName: "Polish Zloty", Symbol: "zł", Emoji: "🇵🇱", Region: "Poland", Precision: 2},
	{Code: "TRY", DisplayName: "Turkish Lira", Symbol: "₺", Emoji: "🇹🇷", Region: "Turkey", Precision: 2},
	{Code: "ZAR", DisplayName: "South African Rand", Symbol: "R", Emoji: "🇿🇦", Region: "South Africa", Precision: 2},
	{Code: "RUB", DisplayName: "Russian Ruble", Symbol: "₽", Emoji: "🇷🇺", Region: "Russia", Precision: 2},
}

var byCode = func() map[string]domain.CurrencyDefinition {
	m := make(map[string]domain.CurrencyDefinition, len(catalog))
	for _, c := range catalog {
		m[c.Code] = c
	}
	return m
}()

// Lookup returns the definition for code. Input is normalized, so "eur" finds "EUR".
func Lookup(code string) (domain.CurrencyDefinition, bool) {
	def, ok := byCode[domain.NormalizeCurrencyCode(code)]
	return def, ok
}

// IsKnown reports whether code is in the catalog.
func IsKnown(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// List returns the catalog in its fixed order.
func List() []domain.CurrencyDefinition {
	out := make([]domain.CurrencyDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// Precision returns the display precision for code, falling back to 2 for unknown codes.
func Precision(code string) int {
	if def, ok := Lookup(code); ok {
		return def.Precision
	}
	return 2
}
