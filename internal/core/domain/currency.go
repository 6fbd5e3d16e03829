package domain

import "strings"

// MaxConfiguredCurrencies caps how many currencies a user can keep active at once.
const MaxConfiguredCurrencies = 5

// CurrencyDefinition is static reference data for a real-world currency.
type CurrencyDefinition struct {
	Code        string `json:"code"`        // e.g., "USD"
	DisplayName string `json:"displayName"` // e.g., "US Dollar"
	Symbol      string `json:"symbol"`      // e.g., "$"
	Emoji       string `json:"emoji"`       // Flag emoji
	Region      string `json:"region,omitempty"`
	Precision   int    `json:"precision"` // Decimal places used for display
}

// CurrencyConfig is one entry of the user's active currency set.
// ExchangeRate converts 1 unit of this currency into base-currency units.
type CurrencyConfig struct {
	Code         string  `json:"code"`
	DisplayName  string  `json:"displayName"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchangeRate"`
	IsBase       bool    `json:"isBase"`
}

// CurrencySet is an immutable snapshot of the configured currencies, in insertion order.
// Mutating helpers always return a new set.
type CurrencySet struct {
	items []CurrencyConfig
}

// NewCurrencySet copies items into a new snapshot.
func NewCurrencySet(items []CurrencyConfig) CurrencySet {
	cp := make([]CurrencyConfig, len(items))
	copy(cp, items)
	return CurrencySet{items: cp}
}

// Items returns a copy of the configured currencies.
func (s CurrencySet) Items() []CurrencyConfig {
	cp := make([]CurrencyConfig, len(s.items))
	copy(cp, s.items)
	return cp
}

// Len is the number of configured currencies.
func (s CurrencySet) Len() int { return len(s.items) }

// IsEmpty reports whether nothing has been configured yet.
func (s CurrencySet) IsEmpty() bool { return len(s.items) == 0 }

// Find returns the config for code, matching case-insensitively.
func (s CurrencySet) Find(code string) (CurrencyConfig, bool) {
	code = NormalizeCurrencyCode(code)
	for _, c := range s.items {
		if c.Code == code {
			return c, true
		}
	}
	return CurrencyConfig{}, false
}

// Base returns the base currency config. ok is false only for an empty set.
func (s CurrencySet) Base() (CurrencyConfig, bool) {
	for _, c := range s.items {
		if c.IsBase {
			return c, true
		}
	}
	return CurrencyConfig{}, false
}

// With returns a new set with c appended.
func (s CurrencySet) With(c CurrencyConfig) CurrencySet {
	items := s.Items()
	return CurrencySet{items: append(items, c)}
}

// Without returns a new set lacking code.
func (s CurrencySet) Without(code string) CurrencySet {
	code = NormalizeCurrencyCode(code)
	items := make([]CurrencyConfig, 0, len(s.items))
	for _, c := range s.items {
		if c.Code != code {
			items = append(items, c)
		}
	}
	return CurrencySet{items: items}
}

// WithRate returns a new set where code carries rate.
func (s CurrencySet) WithRate(code string, rate float64) CurrencySet {
	code = NormalizeCurrencyCode(code)
	items := s.Items()
	for i := range items {
		if items[i].Code == code {
			items[i].ExchangeRate = rate
		}
	}
	return CurrencySet{items: items}
}

// Rebased re-expresses every rate relative to code. The target's current rate r
// divides every other rate so pairwise value ratios are preserved, and the target
// becomes the base with rate exactly 1. ok is false when code is not in the set.
func (s CurrencySet) Rebased(code string) (CurrencySet, bool) {
	target, ok := s.Find(code)
	if !ok {
		return s, false
	}
	r := target.ExchangeRate
	items := s.Items()
	for i := range items {
		if items[i].Code == target.Code {
			items[i].ExchangeRate = 1.0
			items[i].IsBase = true
			continue
		}
		items[i].ExchangeRate = items[i].ExchangeRate / r
		items[i].IsBase = false
	}
	return CurrencySet{items: items}, true
}

// NormalizeCurrencyCode upper-cases and trims a user supplied code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
