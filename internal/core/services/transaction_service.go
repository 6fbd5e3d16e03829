package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/utils/analytics"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/SscSPs/pocket_ledger/internal/utils/pagination"
	"github.com/google/uuid"
)

// DefaultTransactionPageSize is used when a listing does not ask for a limit.
const DefaultTransactionPageSize = 20

// transactionService stores the transaction list as one document.
// Every write replaces the whole list, so writers are serialized.
type transactionService struct {
	BaseService
	kv         portsrepo.KeyValueStore
	ledger     portssvc.CurrencyLedgerReaderSvc
	categories portssvc.CategoryReaderSvc

	mu sync.Mutex
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionPublisher sets where transaction events are sent.
func WithTransactionPublisher(p events.Publisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.Publisher = p
	}
}

// WithTransactionClock overrides the clock used for default timestamps.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates a transaction service.
func NewTransactionService(
	kv portsrepo.KeyValueStore,
	ledger portssvc.CurrencyLedgerReaderSvc,
	categories portssvc.CategoryReaderSvc,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		kv:         kv,
		ledger:     ledger,
		categories: categories,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) load(ctx context.Context) ([]domain.Transaction, error) {
	raw, err := s.kv.Load(ctx, portsrepo.KeyTransactions)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Transaction{}, nil
		}
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, fmt.Errorf("%w: failed to load transactions: %w", apperrors.ErrStorageUnavailable, err)
	}
	txns, err := mapping.DecodeTransactions(raw)
	if err != nil {
		s.LogError(ctx, err, "Stored transactions are unreadable")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return txns, nil
}

func (s *transactionService) save(ctx context.Context, txns []domain.Transaction) error {
	raw, err := mapping.EncodeTransactions(txns, s.Now())
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := s.kv.Save(ctx, portsrepo.KeyTransactions, raw); err != nil {
		s.LogError(ctx, err, "Failed to persist transactions", slog.Int("transaction_count", len(txns)))
		return fmt.Errorf("%w: failed to save transactions: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// value expresses t in the current base currency.
func (s *transactionService) value(ctx context.Context, t domain.Transaction) domain.ValuedTransaction {
	base := s.ledger.CurrentBase(ctx)
	amount := s.ledger.ConvertToBase(ctx, t.Amount, t.CurrencyCode)
	return domain.ValuedTransaction{
		Transaction:  t,
		BaseCurrency: base.Code,
		BaseAmount:   amount,
		Band:         analytics.ClassifyAmount(amount),
	}
}

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.ValuedTransaction, error) {
	if !(req.Amount > 0) || math.IsInf(req.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	kind := domain.TransactionKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: kind must be expense or income", apperrors.ErrValidation)
	}
	code := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if code != "" && !registry.IsKnown(code) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	if _, err := s.categories.GetCategory(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, err
	}

	timestamp := s.Now()
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		timestamp = *req.Timestamp
	}

	t := domain.Transaction{
		ID:           uuid.NewString(),
		Amount:       req.Amount,
		Description:  strings.TrimSpace(req.Description),
		CategoryID:   req.CategoryID,
		Kind:         kind,
		CurrencyCode: code,
		Timestamp:    timestamp.UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txns, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, append(txns, t)); err != nil {
		return nil, err
	}

	valued := s.value(ctx, t)
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", t.ID),
		slog.String("kind", string(t.Kind)),
		slog.String("category_id", t.CategoryID),
		slog.String("band", string(valued.Band)))
	s.Publish(ctx, domain.EventTransactionRecorded, map[string]string{
		"id":       t.ID,
		"kind":     string(t.Kind),
		"category": t.CategoryID,
	})
	return &valued, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.ValuedTransaction, error) {
	txns, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range txns {
		if t.ID == transactionID {
			valued := s.value(ctx, t)
			return &valued, nil
		}
	}
	return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
}

// ListTransactions pages through transactions newest first. The token names the
// last item of the previous page, so inserts between calls do not shift pages.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultTransactionPageSize
	}

	var (
		cursorTime time.Time
		cursorID   string
	)
	if params.NextToken != "" {
		var err error
		cursorTime, cursorID, err = pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
	}

	sorted, err := s.newestFirst(ctx, domain.TransactionKind(params.Kind))
	if err != nil {
		return nil, err
	}

	page := &domain.TransactionPage{Items: make([]domain.ValuedTransaction, 0, limit)}
	for _, t := range sorted {
		if cursorID != "" && !pagination.After(t.Timestamp, t.ID, cursorTime, cursorID) {
			continue
		}
		if len(page.Items) == limit {
			last := page.Items[len(page.Items)-1]
			page.NextToken = pagination.EncodeToken(last.Timestamp, last.ID)
			break
		}
		page.Items = append(page.Items, s.value(ctx, t))
	}
	return page, nil
}

// newestFirst loads the transactions of kind ordered by timestamp, then id, descending.
func (s *transactionService) newestFirst(ctx context.Context, kind domain.TransactionKind) ([]domain.Transaction, error) {
	txns, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(domain.FilterByKind(txns, kind))
	slices.SortFunc(sorted, func(a, b domain.Transaction) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return sorted, nil
}

func (s *transactionService) ValuedTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.ValuedTransaction, error) {
	sorted, err := s.newestFirst(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ValuedTransaction, len(sorted))
	for i, t := range sorted {
		out[i] = s.value(ctx, t)
	}
	return out, nil
}

func (s *transactionService) AllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.load(ctx)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txns, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(txns, func(t domain.Transaction) bool { return t.ID == transactionID })
	if idx < 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	if err := s.save(ctx, slices.Delete(txns, idx, idx+1)); err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	s.Publish(ctx, domain.EventTransactionDeleted, map[string]string{"id": transactionID})
	return nil
}
