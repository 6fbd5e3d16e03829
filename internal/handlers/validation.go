package handlers

import (
	"fmt"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeTag validates that a string names a registry currency, ignoring case.
const currencyCodeTag = "currency_code"

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return registry.IsKnown(domain.NormalizeCurrencyCode(fl.Field().String()))
}

// RegisterValidators adds the custom binding tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation(currencyCodeTag, validateCurrencyCode)
}
