package mapping

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.ID,
		Amount:        d.Amount,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		Kind:          string(d.Kind),
		CurrencyCode:  d.CurrencyCode,
		Timestamp:     d.Timestamp,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:           m.TransactionID,
		Amount:       m.Amount,
		Description:  m.Description,
		CategoryID:   m.CategoryID,
		Kind:         domain.TransactionKind(m.Kind),
		CurrencyCode: domain.NormalizeCurrencyCode(m.CurrencyCode),
		Timestamp:    m.Timestamp,
	}
}

// EncodeTransactions serializes the full transaction list.
func EncodeTransactions(txns []domain.Transaction, now time.Time) ([]byte, error) {
	doc := models.TransactionsDocument{
		DocumentMeta: newDocumentMeta(now),
		Transactions: make([]models.Transaction, len(txns)),
	}
	for i, t := range txns {
		doc.Transactions[i] = ToModelTransaction(t)
	}
	return json.Marshal(doc)
}

// DecodeTransactions parses a stored transactions value.
func DecodeTransactions(raw []byte) ([]domain.Transaction, error) {
	var doc models.TransactionsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	if err := checkDocumentMeta(doc.DocumentMeta); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	out := make([]domain.Transaction, len(doc.Transactions))
	for i, m := range doc.Transactions {
		out[i] = ToDomainTransaction(m)
	}
	return out, nil
}
