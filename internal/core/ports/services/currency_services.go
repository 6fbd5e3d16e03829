package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// CurrencyLedgerReaderSvc defines read operations on the active currency set.
// Reads are served from the in-memory snapshot and never touch storage.
type CurrencyLedgerReaderSvc interface {
	// Lookup returns the configured currency for code.
	Lookup(ctx context.Context, code string) (domain.CurrencyConfig, bool)

	// CurrentBase returns the base currency. It is the zero value before Initialize.
	CurrentBase(ctx context.Context) domain.CurrencyConfig

	// ListCurrencies returns the configured currencies in insertion order.
	ListCurrencies(ctx context.Context) []domain.CurrencyConfig

	// ConvertToBase expresses amount, given in code, in the base currency.
	ConvertToBase(ctx context.Context, amount float64, code string) float64
}

// CurrencyLedgerWriterSvc defines write operations on the active currency set
type CurrencyLedgerWriterSvc interface {
	// Initialize loads the persisted configuration or seeds a single base currency.
	Initialize(ctx context.Context) ([]domain.CurrencyConfig, error)

	AddCurrency(ctx context.Context, code string, rate float64) (*domain.CurrencyConfig, error)
	RemoveCurrency(ctx context.Context, code string) error
	UpdateExchangeRate(ctx context.Context, code string, rate float64) (*domain.CurrencyConfig, error)

	// SetBaseCurrency rebases every rate onto code and returns the new set.
	SetBaseCurrency(ctx context.Context, code string) ([]domain.CurrencyConfig, error)
}

// CurrencyLedgerSvcFacade combines all currency ledger service interfaces
type CurrencyLedgerSvcFacade interface {
	CurrencyLedgerReaderSvc
	CurrencyLedgerWriterSvc
}
