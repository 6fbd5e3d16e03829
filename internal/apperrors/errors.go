package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStorageUnavailable indicates the key-value store could not complete a load or save.
// The core never retries; callers decide whether to warn or carry on.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrNotInitialized indicates a service was used before its Initialize completed.
var ErrNotInitialized = errors.New("not initialized")

// Currency configuration errors. Each one wraps ErrValidation so handlers can
// classify them without knowing the full taxonomy.
var (
	ErrDuplicateCurrency     = fmt.Errorf("%w: currency already configured", ErrValidation)
	ErrLimitExceeded         = fmt.Errorf("%w: currency limit reached", ErrValidation)
	ErrUnknownCurrency       = fmt.Errorf("%w: unknown currency code", ErrValidation)
	ErrCannotRemoveBase      = fmt.Errorf("%w: the base currency cannot be removed", ErrValidation)
	ErrCannotModifyBaseRate  = fmt.Errorf("%w: the base currency rate is fixed at 1", ErrValidation)
	ErrInvalidRate           = fmt.Errorf("%w: exchange rate must be greater than zero", ErrValidation)
	ErrCurrencyNotConfigured = fmt.Errorf("%w: currency is not configured", ErrValidation)
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
