package domain

import "time"

// TransactionKind distinguishes money going out from money coming in.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	return k == KindExpense || k == KindIncome
}

// Transaction is a single recorded income or expense entry.
// An empty CurrencyCode means the amount is already in the base currency.
type Transaction struct {
	ID           string          `json:"id"`
	Amount       float64         `json:"amount"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"categoryID"`
	Kind         TransactionKind `json:"kind"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// FilterByKind returns the transactions of the given kind. An empty kind keeps everything.
func FilterByKind(txns []Transaction, kind TransactionKind) []Transaction {
	if kind == "" {
		return txns
	}
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// ValuedTransaction is a transaction together with its value in the base currency.
type ValuedTransaction struct {
	Transaction
	BaseCurrency string
	BaseAmount   float64
	Band         AmountBand
}

// TransactionPage is one page of a newest-first transaction listing.
type TransactionPage struct {
	Items     []ValuedTransaction
	NextToken string
}
