package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// ReportingService derives statistics from the recorded transactions.
// Every amount is normalized to the base currency before aggregation.
// An empty kind includes both expenses and income.
type ReportingService interface {
	// CategoryStats returns per-category counts and totals, largest first, plus the largest entry.
	CategoryStats(ctx context.Context, kind domain.TransactionKind) ([]domain.CategoryStat, *domain.CategoryStat, error)

	// Overall returns the count and mean amount.
	Overall(ctx context.Context, kind domain.TransactionKind) (domain.OverallStats, error)

	// PopularCategories returns up to limit categories, most used first.
	PopularCategories(ctx context.Context, limit int) ([]domain.Category, error)

	// Summary builds the dashboard view.
	Summary(ctx context.Context) (*domain.Summary, error)
}
