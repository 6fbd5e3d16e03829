package models

// CurrencyConfig is the stored form of one configured currency.
type CurrencyConfig struct {
	Code         string  `json:"code"`         // e.g., "EUR"
	DisplayName  string  `json:"displayName"`  // e.g., "Euro"
	Symbol       string  `json:"symbol"`       // e.g., "€"
	ExchangeRate float64 `json:"exchangeRate"` // Units of base per unit of Code
	IsBase       bool    `json:"isBase"`
}

// CurrencyConfigDocument is stored under the currency_config key.
// The whole set is replaced on every save.
type CurrencyConfigDocument struct {
	DocumentMeta
	Currencies []CurrencyConfig `json:"currencies"`
}
