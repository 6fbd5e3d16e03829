// Package analytics derives aggregates and rankings from a transaction list.
// Every function is pure: inputs are only read, never reordered or modified.
// Amounts are summed as given, so callers normalize them to one currency first.
package analytics

import (
	"cmp"
	"slices"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// DefaultPopularLimit is how many categories PopularCategories returns when no limit is given.
const DefaultPopularLimit = 5

// Thresholds used by ClassifyAmount.
const (
	HighAmountThreshold = 100.0
	LowAmountThreshold  = 10.0
)

// PerCategoryStats counts and sums the transactions of every category, drops
// categories without matches, and orders the rest by total descending. Equal
// totals keep the catalog order. The second result is the top entry, or nil.
func PerCategoryStats(txns []domain.Transaction, categories []domain.Category) ([]domain.CategoryStat, *domain.CategoryStat) {
	type agg struct {
		count int
		total float64
	}
	byID := make(map[string]*agg, len(categories))
	for _, t := range txns {
		a, ok := byID[t.CategoryID]
		if !ok {
			a = &agg{}
			byID[t.CategoryID] = a
		}
		a.count++
		a.total += t.Amount
	}

	stats := make([]domain.CategoryStat, 0, len(categories))
	for _, c := range categories {
		a, ok := byID[c.ID]
		if !ok || a.count == 0 {
			continue
		}
		stats = append(stats, domain.CategoryStat{Category: c, Count: a.count, Total: a.total})
	}

	slices.SortStableFunc(stats, func(a, b domain.CategoryStat) int {
		return cmp.Compare(b.Total, a.Total)
	})

	if len(stats) == 0 {
		return stats, nil
	}
	largest := stats[0]
	return stats, &largest
}

// OverallStats returns the count and arithmetic mean of the amounts. The mean of nothing is 0.
func OverallStats(txns []domain.Transaction) domain.OverallStats {
	if len(txns) == 0 {
		return domain.OverallStats{}
	}
	var sum float64
	for _, t := range txns {
		sum += t.Amount
	}
	return domain.OverallStats{Count: len(txns), Mean: sum / float64(len(txns))}
}

// Totals splits the amounts into income and expense.
func Totals(txns []domain.Transaction) domain.Totals {
	var out domain.Totals
	for _, t := range txns {
		switch t.Kind {
		case domain.KindIncome:
			out.Income += t.Amount
		case domain.KindExpense:
			out.Expense += t.Amount
		}
	}
	out.Balance = out.Income - out.Expense
	return out
}

// PopularCategories ranks category ids by how many transactions use them.
// Ties keep the order in which each category was first seen while scanning txns.
// When fewer than limit categories are in use, built-in categories not already
// ranked are appended in catalog order. Ids absent from categories are ignored.
func PopularCategories(txns []domain.Transaction, categories []domain.Category, limit int) []string {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range txns {
		if _, ok := known[t.CategoryID]; !ok {
			continue
		}
		if _, seen := counts[t.CategoryID]; !seen {
			order = append(order, t.CategoryID)
		}
		counts[t.CategoryID]++
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})

	if len(order) > limit {
		order = order[:limit]
	}

	included := make(map[string]struct{}, len(order))
	for _, id := range order {
		included[id] = struct{}{}
	}
	for _, c := range categories {
		if len(order) >= limit {
			break
		}
		if c.IsCustom {
			continue
		}
		if _, ok := included[c.ID]; ok {
			continue
		}
		order = append(order, c.ID)
		included[c.ID] = struct{}{}
	}
	return order
}

// ClassifyAmount places a single amount in a band. Callers pass base-currency amounts
// so the thresholds mean the same thing whatever currency the entry was typed in.
func ClassifyAmount(amount float64) domain.AmountBand {
	switch {
	case amount > HighAmountThreshold:
		return domain.BandHigh
	case amount < LowAmountThreshold:
		return domain.BandLow
	default:
		return domain.BandNormal
	}
}
