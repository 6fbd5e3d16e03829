package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/utils"
)

// CreateTransactionRequest defines the data needed to record an income or expense.
// An empty CurrencyCode records the amount in the base currency.
type CreateTransactionRequest struct {
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	Description  string     `json:"description" binding:"max=200"`
	CategoryID   string     `json:"categoryID" binding:"required"`
	Kind         string     `json:"kind" binding:"required,oneof=expense income"`
	CurrencyCode string     `json:"currencyCode" binding:"omitempty,currency_code"`
	Timestamp    *time.Time `json:"timestamp"`
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
	Kind      string `form:"kind" binding:"omitempty,oneof=expense income"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string            `json:"transactionID"`
	Amount              float64           `json:"amount"`
	AmountFormatted     string            `json:"amountFormatted"`
	CurrencyCode        string            `json:"currencyCode"`
	Description         string            `json:"description"`
	CategoryID          string            `json:"categoryID"`
	Kind                string            `json:"kind"`
	Timestamp           time.Time         `json:"timestamp"`
	BaseCurrency        string            `json:"baseCurrency"`
	BaseAmount          float64           `json:"baseAmount"`
	BaseAmountFormatted string            `json:"baseAmountFormatted"`
	Band                domain.AmountBand `json:"band"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
// baseAmount is the amount already converted into baseCode.
func ToTransactionResponse(t domain.Transaction, baseCode string, baseAmount float64, band domain.AmountBand) TransactionResponse {
	code := t.CurrencyCode
	if code == "" {
		code = baseCode
	}
	return TransactionResponse{
		TransactionID:       t.ID,
		Amount:              t.Amount,
		AmountFormatted:     utils.FormatWithCurrencyPrecision(t.Amount, code),
		CurrencyCode:        code,
		Description:         t.Description,
		CategoryID:          t.CategoryID,
		Kind:                string(t.Kind),
		Timestamp:           t.Timestamp,
		BaseCurrency:        baseCode,
		BaseAmount:          baseAmount,
		BaseAmountFormatted: utils.FormatWithCurrencyPrecision(baseAmount, baseCode),
		Band:                band,
	}
}
