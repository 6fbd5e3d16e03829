package domain

// CategoryStat aggregates the transactions that belong to one category.
// Total is expressed in the base currency.
type CategoryStat struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Total    float64  `json:"total"`
}

// OverallStats is the count and arithmetic mean over a set of amounts.
type OverallStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// Totals is the income/expense split of a set of transactions.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"` // Income - Expense
}

// AmountBand classifies a single amount as unusually high, low, or neither.
type AmountBand string

const (
	BandHigh   AmountBand = "high"
	BandNormal AmountBand = "normal"
	BandLow    AmountBand = "low"
)

// Summary is the dashboard view over every recorded transaction.
type Summary struct {
	BaseCurrency    string        `json:"baseCurrency"`
	Totals          Totals        `json:"totals"`
	Expenses        OverallStats  `json:"expenses"`
	LargestCategory *CategoryStat `json:"largestCategory,omitempty"`
}
