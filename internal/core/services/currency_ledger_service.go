package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
)

// currencyLedgerService owns the active currency set.
// Writers are serialized by mu; readers only ever see a complete snapshot.
type currencyLedgerService struct {
	BaseService
	kv          portsrepo.KeyValueStore
	defaultBase string

	mu       sync.Mutex
	snapshot atomic.Pointer[domain.CurrencySet]
}

// CurrencyLedgerOption is a functional option for configuring the currency ledger
type CurrencyLedgerOption func(*currencyLedgerService)

// WithDefaultBaseCurrency sets the currency seeded on first run.
func WithDefaultBaseCurrency(code string) CurrencyLedgerOption {
	return func(s *currencyLedgerService) {
		s.defaultBase = domain.NormalizeCurrencyCode(code)
	}
}

// WithCurrencyLedgerPublisher sets where currency events are sent.
func WithCurrencyLedgerPublisher(p events.Publisher) CurrencyLedgerOption {
	return func(s *currencyLedgerService) {
		s.Publisher = p
	}
}

// WithCurrencyLedgerClock overrides the clock used to stamp stored documents.
func WithCurrencyLedgerClock(clock func() time.Time) CurrencyLedgerOption {
	return func(s *currencyLedgerService) {
		s.Clock = clock
	}
}

// NewCurrencyLedgerService creates a currency ledger backed by kv.
// Initialize must be called before any other method.
func NewCurrencyLedgerService(kv portsrepo.KeyValueStore, options ...CurrencyLedgerOption) portssvc.CurrencyLedgerSvcFacade {
	svc := &currencyLedgerService{
		kv:          kv,
		defaultBase: registry.DefaultBaseCode,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure currencyLedgerService implements the facade
var _ portssvc.CurrencyLedgerSvcFacade = (*currencyLedgerService)(nil)

func (s *currencyLedgerService) current() domain.CurrencySet {
	if p := s.snapshot.Load(); p != nil {
		return *p
	}
	return domain.CurrencySet{}
}

// commit publishes next to readers, then persists it. The swap is not undone when
// the save fails; the caller gets ErrStorageUnavailable and memory stays ahead of storage.
func (s *currencyLedgerService) commit(ctx context.Context, next domain.CurrencySet) error {
	raw, err := mapping.EncodeCurrencySet(next, s.Now())
	if err != nil {
		return fmt.Errorf("failed to encode currency config: %w", err)
	}

	s.snapshot.Store(&next)

	if err := s.kv.Save(ctx, portsrepo.KeyCurrencyConfig, raw); err != nil {
		s.LogError(ctx, err, "Failed to persist currency config", slog.Int("currency_count", next.Len()))
		return fmt.Errorf("%w: failed to save currency config: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64)
}

// Initialize loads the stored configuration. When there is none, a single base
// currency is created and saved.
func (s *currencyLedgerService) Initialize(ctx context.Context) ([]domain.CurrencyConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Load(ctx, portsrepo.KeyCurrencyConfig)
	switch {
	case err == nil:
		set, decodeErr := mapping.DecodeCurrencySet(raw)
		if decodeErr != nil {
			s.LogError(ctx, decodeErr, "Stored currency config is unreadable")
			return nil, fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, decodeErr)
		}
		s.snapshot.Store(&set)
		s.LogInfo(ctx, "Currency config loaded", slog.Int("currency_count", set.Len()))
		return set.Items(), nil
	case errors.Is(err, apperrors.ErrNotFound):
		// first run
	default:
		s.LogError(ctx, err, "Failed to load currency config")
		return nil, fmt.Errorf("%w: failed to load currency config: %w", apperrors.ErrStorageUnavailable, err)
	}

	def, ok := registry.Lookup(s.defaultBase)
	if !ok {
		s.LogWarn(ctx, nil, "Configured default base currency is unknown, falling back",
			slog.String("configured", s.defaultBase),
			slog.String("fallback", registry.DefaultBaseCode))
		def, _ = registry.Lookup(registry.DefaultBaseCode)
	}

	set := domain.NewCurrencySet([]domain.CurrencyConfig{{
		Code:         def.Code,
		DisplayName:  def.DisplayName,
		Symbol:       def.Symbol,
		ExchangeRate: 1.0,
		IsBase:       true,
	}})
	if err := s.commit(ctx, set); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Currency config seeded", slog.String("base_currency", def.Code))
	return set.Items(), nil
}

// AddCurrency appends a non-base currency. Checks run in a fixed order:
// duplicate, limit, unknown code, rate.
func (s *currencyLedgerService) AddCurrency(ctx context.Context, code string, rate float64) (*domain.CurrencyConfig, error) {
	code = domain.NormalizeCurrencyCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.current()
	if set.IsEmpty() {
		return nil, fmt.Errorf("currency ledger: %w", apperrors.ErrNotInitialized)
	}
	if _, exists := set.Find(code); exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateCurrency, code)
	}
	if set.Len() >= domain.MaxConfiguredCurrencies {
		return nil, fmt.Errorf("%w: at most %d currencies", apperrors.ErrLimitExceeded, domain.MaxConfiguredCurrencies)
	}
	def, ok := registry.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	if !validRate(rate) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidRate, formatRate(rate))
	}

	cfg := domain.CurrencyConfig{
		Code:         def.Code,
		DisplayName:  def.DisplayName,
		Symbol:       def.Symbol,
		ExchangeRate: rate,
	}
	if err := s.commit(ctx, set.With(cfg)); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Currency added", slog.String("currency_code", cfg.Code), slog.Float64("exchange_rate", rate))
	s.Publish(ctx, domain.EventCurrencyAdded, map[string]string{"code": cfg.Code, "rate": formatRate(rate)})
	return &cfg, nil
}

// RemoveCurrency drops a non-base currency.
func (s *currencyLedgerService) RemoveCurrency(ctx context.Context, code string) error {
	code = domain.NormalizeCurrencyCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.current()
	cfg, ok := set.Find(code)
	if ok && cfg.IsBase {
		return fmt.Errorf("%w: %s", apperrors.ErrCannotRemoveBase, code)
	}
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotConfigured, code)
	}

	if err := s.commit(ctx, set.Without(code)); err != nil {
		return err
	}

	s.LogInfo(ctx, "Currency removed", slog.String("currency_code", code))
	s.Publish(ctx, domain.EventCurrencyRemoved, map[string]string{"code": code})
	return nil
}

// UpdateExchangeRate replaces the rate of a non-base currency.
func (s *currencyLedgerService) UpdateExchangeRate(ctx context.Context, code string, rate float64) (*domain.CurrencyConfig, error) {
	code = domain.NormalizeCurrencyCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.current()
	cfg, ok := set.Find(code)
	if ok && cfg.IsBase {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCannotModifyBaseRate, code)
	}
	if !validRate(rate) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidRate, formatRate(rate))
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotConfigured, code)
	}

	previous := cfg.ExchangeRate
	if err := s.commit(ctx, set.WithRate(code, rate)); err != nil {
		return nil, err
	}
	cfg.ExchangeRate = rate

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("currency_code", code),
		slog.Float64("previous_rate", previous),
		slog.Float64("exchange_rate", rate))
	s.Publish(ctx, domain.EventCurrencyRateUpdated, map[string]string{
		"code":          code,
		"rate":          formatRate(rate),
		"previous_rate": formatRate(previous),
	})
	return &cfg, nil
}

// SetBaseCurrency makes code the base and re-expresses every other rate relative
// to it. The whole new set is computed from one snapshot before anything is stored.
func (s *currencyLedgerService) SetBaseCurrency(ctx context.Context, code string) ([]domain.CurrencyConfig, error) {
	code = domain.NormalizeCurrencyCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.current()
	target, ok := set.Find(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotConfigured, code)
	}
	if target.IsBase {
		return set.Items(), nil
	}

	previous, _ := set.Base()
	next, _ := set.Rebased(code)
	for _, c := range next.Items() {
		if !validRate(c.ExchangeRate) {
			return nil, fmt.Errorf("%w: rebasing to %s gives %s a rate of %s",
				apperrors.ErrInvalidRate, code, c.Code, formatRate(c.ExchangeRate))
		}
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Base currency changed",
		slog.String("previous_base", previous.Code),
		slog.String("base_currency", code),
		slog.Float64("rebase_divisor", target.ExchangeRate))
	s.Publish(ctx, domain.EventBaseCurrencyChanged, map[string]string{
		"code":          code,
		"previous_base": previous.Code,
	})
	return next.Items(), nil
}

func (s *currencyLedgerService) Lookup(_ context.Context, code string) (domain.CurrencyConfig, bool) {
	return s.current().Find(code)
}

func (s *currencyLedgerService) CurrentBase(_ context.Context) domain.CurrencyConfig {
	base, _ := s.current().Base()
	return base
}

func (s *currencyLedgerService) ListCurrencies(_ context.Context) []domain.CurrencyConfig {
	return s.current().Items()
}

// ConvertToBase multiplies amount by the rate of code. An empty code, the base
// code, or a code that is not configured all return amount unchanged: an entry
// whose currency was later removed keeps counting at face value.
func (s *currencyLedgerService) ConvertToBase(ctx context.Context, amount float64, code string) float64 {
	code = domain.NormalizeCurrencyCode(code)
	if code == "" {
		return amount
	}
	cfg, ok := s.current().Find(code)
	if !ok {
		s.LogDebug(ctx, "Converting from unconfigured currency at face value", slog.String("currency_code", code))
		return amount
	}
	if cfg.IsBase {
		return amount
	}
	return amount * cfg.ExchangeRate
}
