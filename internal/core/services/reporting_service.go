package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/utils/analytics"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledger       portssvc.CurrencyLedgerReaderSvc
	transactions portssvc.TransactionReaderSvc
	categories   portssvc.CategoryReaderSvc
}

// NewReportingService creates a new reporting service
func NewReportingService(
	ledger portssvc.CurrencyLedgerReaderSvc,
	transactions portssvc.TransactionReaderSvc,
	categories portssvc.CategoryReaderSvc,
) portssvc.ReportingService {
	return &reportingService{
		ledger:       ledger,
		transactions: transactions,
		categories:   categories,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// normalized loads the transactions of kind with every amount converted to the
// base currency. The stored transactions are not modified.
func (s *reportingService) normalized(ctx context.Context, kind domain.TransactionKind) ([]domain.Transaction, string, error) {
	txns, err := s.transactions.AllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for report")
		return nil, "", fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	base := s.ledger.CurrentBase(ctx).Code
	filtered := domain.FilterByKind(txns, kind)
	out := make([]domain.Transaction, len(filtered))
	for i, t := range filtered {
		t.Amount = s.ledger.ConvertToBase(ctx, t.Amount, t.CurrencyCode)
		t.CurrencyCode = base
		out[i] = t
	}
	return out, base, nil
}

func (s *reportingService) listCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve categories for report")
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

func (s *reportingService) CategoryStats(ctx context.Context, kind domain.TransactionKind) ([]domain.CategoryStat, *domain.CategoryStat, error) {
	txns, _, err := s.normalized(ctx, kind)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, nil, err
	}

	stats, largest := analytics.PerCategoryStats(txns, categories)
	s.LogDebug(ctx, "Category stats generated",
		slog.String("kind", string(kind)),
		slog.Int("category_count", len(stats)))
	return stats, largest, nil
}

func (s *reportingService) Overall(ctx context.Context, kind domain.TransactionKind) (domain.OverallStats, error) {
	txns, _, err := s.normalized(ctx, kind)
	if err != nil {
		return domain.OverallStats{}, err
	}
	return analytics.OverallStats(txns), nil
}

// PopularCategories ranks categories over all transactions, both kinds.
func (s *reportingService) PopularCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	txns, err := s.transactions.AllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for report")
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	ids := analytics.PopularCategories(txns, categories, limit)
	out := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out, nil
}

func (s *reportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	txns, base, err := s.normalized(ctx, "")
	if err != nil {
		return nil, err
	}
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}

	expenses := domain.FilterByKind(txns, domain.KindExpense)
	_, largest := analytics.PerCategoryStats(expenses, categories)

	summary := &domain.Summary{
		BaseCurrency:    base,
		Totals:          analytics.Totals(txns),
		Expenses:        analytics.OverallStats(expenses),
		LargestCategory: largest,
	}
	s.LogInfo(ctx, "Summary report generated",
		slog.String("base_currency", base),
		slog.Int("transaction_count", len(txns)))
	return summary, nil
}
