package models

import "time"

// Transaction is the stored form of a recorded income or expense.
type Transaction struct {
	TransactionID string    `json:"transactionID"`
	Amount        float64   `json:"amount"` // Positive, in CurrencyCode units
	Description   string    `json:"description"`
	CategoryID    string    `json:"categoryID"`
	Kind          string    `json:"kind"`                   // "expense" or "income"
	CurrencyCode  string    `json:"currencyCode,omitempty"` // Empty means base currency
	Timestamp     time.Time `json:"timestamp"`
}

// TransactionsDocument is stored under the transactions key.
type TransactionsDocument struct {
	DocumentMeta
	Transactions []Transaction `json:"transactions"`
}
