package dto

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/utils"
)

// ReportParams holds the optional kind filter shared by the report endpoints.
type ReportParams struct {
	Kind string `form:"kind" binding:"omitempty,oneof=expense income"`
}

// PopularCategoriesParams holds the query parameters for the popularity ranking.
type PopularCategoriesParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// CategoryStatResponse is one row of the per-category report.
type CategoryStatResponse struct {
	CategoryID     string  `json:"categoryID"`
	Name           string  `json:"name"`
	Emoji          string  `json:"emoji"`
	Color          string  `json:"color"`
	Count          int     `json:"count"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"totalFormatted"`
}

// CategoryStatsResponse is the richest-first per-category report.
type CategoryStatsResponse struct {
	BaseCurrency    string                 `json:"baseCurrency"`
	Kind            string                 `json:"kind,omitempty"`
	Categories      []CategoryStatResponse `json:"categories"`
	LargestCategory *CategoryStatResponse  `json:"largestCategory,omitempty"`
}

// OverallStatsResponse is the count and mean report.
type OverallStatsResponse struct {
	BaseCurrency  string  `json:"baseCurrency"`
	Kind          string  `json:"kind,omitempty"`
	Count         int     `json:"count"`
	Mean          float64 `json:"mean"`
	MeanFormatted string  `json:"meanFormatted"`
}

// PopularCategoriesResponse lists categories most used first.
type PopularCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// SummaryResponse is the dashboard report.
type SummaryResponse struct {
	BaseCurrency    string                `json:"baseCurrency"`
	Income          string                `json:"income"`
	Expense         string                `json:"expense"`
	Balance         string                `json:"balance"`
	ExpenseCount    int                   `json:"expenseCount"`
	AverageExpense  string                `json:"averageExpense"`
	LargestCategory *CategoryStatResponse `json:"largestCategory,omitempty"`
}

// ToCategoryStatResponse converts a domain.CategoryStat, formatting in baseCode.
func ToCategoryStatResponse(s domain.CategoryStat, baseCode string) CategoryStatResponse {
	return CategoryStatResponse{
		CategoryID:     s.Category.ID,
		Name:           s.Category.Name,
		Emoji:          s.Category.Emoji,
		Color:          s.Category.Color,
		Count:          s.Count,
		Total:          s.Total,
		TotalFormatted: utils.FormatWithCurrencyPrecision(s.Total, baseCode),
	}
}

// ToCategoryStatsResponse builds the per-category report.
func ToCategoryStatsResponse(stats []domain.CategoryStat, largest *domain.CategoryStat, baseCode string, kind string) CategoryStatsResponse {
	rows := make([]CategoryStatResponse, len(stats))
	for i, s := range stats {
		rows[i] = ToCategoryStatResponse(s, baseCode)
	}
	res := CategoryStatsResponse{
		BaseCurrency: baseCode,
		Kind:         kind,
		Categories:   rows,
	}
	if largest != nil {
		l := ToCategoryStatResponse(*largest, baseCode)
		res.LargestCategory = &l
	}
	return res
}

// ToOverallStatsResponse builds the count/mean report.
func ToOverallStatsResponse(s domain.OverallStats, baseCode string, kind string) OverallStatsResponse {
	return OverallStatsResponse{
		BaseCurrency:  baseCode,
		Kind:          kind,
		Count:         s.Count,
		Mean:          s.Mean,
		MeanFormatted: utils.FormatWithCurrencyPrecision(s.Mean, baseCode),
	}
}

// ToSummaryResponse builds the dashboard report.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	res := SummaryResponse{
		BaseCurrency:   s.BaseCurrency,
		Income:         utils.FormatWithCurrencyPrecision(s.Totals.Income, s.BaseCurrency),
		Expense:        utils.FormatWithCurrencyPrecision(s.Totals.Expense, s.BaseCurrency),
		Balance:        utils.FormatWithCurrencyPrecision(s.Totals.Balance, s.BaseCurrency),
		ExpenseCount:   s.Expenses.Count,
		AverageExpense: utils.FormatWithCurrencyPrecision(s.Expenses.Mean, s.BaseCurrency),
	}
	if s.LargestCategory != nil {
		l := ToCategoryStatResponse(*s.LargestCategory, s.BaseCurrency)
		res.LargestCategory = &l
	}
	return res
}
