package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// ToModelCurrencyConfig converts a domain CurrencyConfig to a model CurrencyConfig
func ToModelCurrencyConfig(d domain.CurrencyConfig) models.CurrencyConfig {
	return models.CurrencyConfig{
		Code:         d.Code,
		DisplayName:  d.DisplayName,
		Symbol:       d.Symbol,
		ExchangeRate: d.ExchangeRate,
		IsBase:       d.IsBase,
	}
}

// ToDomainCurrencyConfig converts a model CurrencyConfig to a domain CurrencyConfig
func ToDomainCurrencyConfig(m models.CurrencyConfig) domain.CurrencyConfig {
	return domain.CurrencyConfig{
		Code:         domain.NormalizeCurrencyCode(m.Code),
		DisplayName:  m.DisplayName,
		Symbol:       m.Symbol,
		ExchangeRate: m.ExchangeRate,
		IsBase:       m.IsBase,
	}
}

// EncodeCurrencySet serializes the whole set for the currency_config key.
func EncodeCurrencySet(set domain.CurrencySet, now time.Time) ([]byte, error) {
	items := set.Items()
	doc := models.CurrencyConfigDocument{
		DocumentMeta: newDocumentMeta(now),
		Currencies:   make([]models.CurrencyConfig, len(items)),
	}
	for i, c := range items {
		doc.Currencies[i] = ToModelCurrencyConfig(c)
	}
	return json.Marshal(doc)
}

// DecodeCurrencySet parses a stored currency_config value. A set that breaks
// any ledger invariant is rejected rather than loaded.
func DecodeCurrencySet(raw []byte) (domain.CurrencySet, error) {
	var doc models.CurrencyConfigDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.CurrencySet{}, fmt.Errorf("failed to decode currency config: %w", err)
	}
	if err := checkDocumentMeta(doc.DocumentMeta); err != nil {
		return domain.CurrencySet{}, fmt.Errorf("failed to decode currency config: %w", err)
	}
	items := make([]domain.CurrencyConfig, len(doc.Currencies))
	for i, m := range doc.Currencies {
		items[i] = ToDomainCurrencyConfig(m)
	}
	if err := checkCurrencySet(items); err != nil {
		return domain.CurrencySet{}, fmt.Errorf("invalid currency config: %w", err)
	}
	return domain.NewCurrencySet(items), nil
}

// checkCurrencySet enforces: exactly one base at rate 1, at most
// MaxConfiguredCurrencies entries, unique registry codes and finite positive rates.
func checkCurrencySet(items []domain.CurrencyConfig) error {
	if len(items) > domain.MaxConfiguredCurrencies {
		return fmt.Errorf("%d currencies, at most %d allowed", len(items), domain.MaxConfiguredCurrencies)
	}

	var errs []error
	bases := 0
	seen := make(map[string]struct{}, len(items))
	for _, c := range items {
		if _, dup := seen[c.Code]; dup {
			errs = append(errs, fmt.Errorf("duplicate currency %q", c.Code))
		}
		seen[c.Code] = struct{}{}
		if !registry.IsKnown(c.Code) {
			errs = append(errs, fmt.Errorf("unknown currency %q", c.Code))
		}
		if !(c.ExchangeRate > 0) || math.IsInf(c.ExchangeRate, 0) {
			errs = append(errs, fmt.Errorf("currency %q has invalid rate %v", c.Code, c.ExchangeRate))
		}
		if c.IsBase {
			bases++
			if c.ExchangeRate != 1 {
				errs = append(errs, fmt.Errorf("base currency %q has rate %v, want 1", c.Code, c.ExchangeRate))
			}
		}
	}
	if bases != 1 {
		errs = append(errs, fmt.Errorf("%d base currencies, want exactly 1", bases))
	}
	return errors.Join(errs...)
}
