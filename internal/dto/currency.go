package dto

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/SscSPs/pocket_ledger/internal/utils"
)

// AddCurrencyRequest defines the data needed to add a currency to the active set.
// The code and rate are validated by the service so the reason can be returned verbatim.
type AddCurrencyRequest struct {
	CurrencyCode string  `json:"currencyCode" binding:"required"`
	ExchangeRate float64 `json:"exchangeRate"`
}

// UpdateExchangeRateRequest carries a new rate for a non-base currency.
type UpdateExchangeRateRequest struct {
	ExchangeRate float64 `json:"exchangeRate"`
}

// SetBaseCurrencyRequest selects the currency that becomes the new base.
type SetBaseCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required"`
}

// CurrencyDefinitionResponse is a catalog entry.
type CurrencyDefinitionResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Emoji        string `json:"emoji"`
	Region       string `json:"region,omitempty"`
	Precision    int    `json:"precision"`
}

// CurrencyConfigResponse defines the data returned for a configured currency.
type CurrencyConfigResponse struct {
	CurrencyCode string  `json:"currencyCode"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Emoji        string  `json:"emoji,omitempty"`
	ExchangeRate float64 `json:"exchangeRate"`
	IsBase       bool    `json:"isBase"`
}

// ConvertResponse is the result of converting an amount into the base currency.
type ConvertResponse struct {
	Amount          float64 `json:"amount"`
	CurrencyCode    string  `json:"currencyCode"`
	BaseCurrency    string  `json:"baseCurrency"`
	Converted       float64 `json:"converted"`
	ConvertedString string  `json:"convertedFormatted"`
}

// ToCurrencyDefinitionResponse converts a registry entry to its DTO.
func ToCurrencyDefinitionResponse(d domain.CurrencyDefinition) CurrencyDefinitionResponse {
	return CurrencyDefinitionResponse{
		CurrencyCode: d.Code,
		Name:         d.DisplayName,
		Symbol:       d.Symbol,
		Emoji:        d.Emoji,
		Region:       d.Region,
		Precision:    d.Precision,
	}
}

// ToCurrencyConfigResponse converts a configured currency to CurrencyConfigResponse DTO
func ToCurrencyConfigResponse(c domain.CurrencyConfig) CurrencyConfigResponse {
	res := CurrencyConfigResponse{
		CurrencyCode: c.Code,
		Name:         c.DisplayName,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate,
		IsBase:       c.IsBase,
	}
	if def, ok := registry.Lookup(c.Code); ok {
		res.Emoji = def.Emoji
	}
	return res
}

// ToListCurrencyConfigResponse converts a slice of configured currencies.
func ToListCurrencyConfigResponse(cs []domain.CurrencyConfig) []CurrencyConfigResponse {
	res := make([]CurrencyConfigResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCurrencyConfigResponse(c)
	}
	return res
}

// ToConvertResponse builds the conversion result.
func ToConvertResponse(amount float64, code string, base string, converted float64) ConvertResponse {
	return ConvertResponse{
		Amount:          amount,
		CurrencyCode:    code,
		BaseCurrency:    base,
		Converted:       converted,
		ConvertedString: utils.FormatWithCurrencyPrecision(converted, base),
	}
}
