package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransaction retrieves a transaction by id, valued in the current base currency.
	GetTransaction(ctx context.Context, transactionID string) (*domain.ValuedTransaction, error)

	// ListTransactions returns a newest-first page of transactions.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error)

	// AllTransactions returns every transaction in insertion order.
	AllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ValuedTransactions returns every transaction of kind, newest first, valued in the
	// current base currency. An empty kind returns both kinds.
	ValuedTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.ValuedTransaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.ValuedTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
