package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	now       time.Time
	kv        *memory.KVRepository
	publisher *recordingPublisher
	ledger    portssvc.CurrencyLedgerSvcFacade
	service   portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.kv = memory.NewKVRepository()
	suite.publisher = &recordingPublisher{}

	suite.ledger = services.NewCurrencyLedgerService(suite.kv)
	_, err := suite.ledger.Initialize(suite.ctx)
	suite.Require().NoError(err)
	_, err = suite.ledger.AddCurrency(suite.ctx, "EUR", 1.10)
	suite.Require().NoError(err)

	suite.service = services.NewTransactionService(suite.kv, suite.ledger, services.NewCategoryService(suite.kv),
		services.WithTransactionPublisher(suite.publisher),
		services.WithTransactionClock(func() time.Time { return suite.now }))
}

func (suite *TransactionServiceTestSuite) record(amount float64, kind domain.TransactionKind, at time.Time) *domain.ValuedTransaction {
	t, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount:     amount,
		CategoryID: "food",
		Kind:       string(kind),
		Timestamp:  &at,
	})
	suite.Require().NoError(err)
	return t
}

func (suite *TransactionServiceTestSuite) TestRecord_ValuesInBase() {
	t, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount:       100,
		Description:  " dinner ",
		CategoryID:   "food",
		Kind:         "expense",
		CurrencyCode: "eur",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(t.ID)
	suite.Equal("dinner", t.Description)
	suite.Equal("EUR", t.CurrencyCode)
	suite.Equal(suite.now, t.Timestamp)
	suite.Equal("USD", t.BaseCurrency)
	suite.InDelta(110.0, t.BaseAmount, 1e-9)
	suite.Equal(domain.BandHigh, t.Band)
	suite.Equal([]domain.LedgerEventType{domain.EventTransactionRecorded}, suite.publisher.types())
}

func (suite *TransactionServiceTestSuite) TestRecord_EmptyCurrencyIsBase() {
	t := suite.record(5, domain.KindExpense, suite.now)

	suite.Empty(t.CurrencyCode)
	suite.Equal(5.0, t.BaseAmount)
	suite.Equal(domain.BandLow, t.Band)
}

func (suite *TransactionServiceTestSuite) TestRecord_Validation() {
	cases := map[string]dto.CreateTransactionRequest{
		"zero amount":      {Amount: 0, CategoryID: "food", Kind: "expense"},
		"negative amount":  {Amount: -3, CategoryID: "food", Kind: "expense"},
		"bad kind":         {Amount: 3, CategoryID: "food", Kind: "transfer"},
		"unknown currency": {Amount: 3, CategoryID: "food", Kind: "expense", CurrencyCode: "XXX"},
		"unknown category": {Amount: 3, CategoryID: "nope", Kind: "expense"},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			_, err := suite.service.RecordTransaction(suite.ctx, req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	all, err := suite.service.AllTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *TransactionServiceTestSuite) TestGetAndDelete() {
	t := suite.record(20, domain.KindIncome, suite.now)

	got, err := suite.service.GetTransaction(suite.ctx, t.ID)
	suite.Require().NoError(err)
	suite.Equal(t.ID, got.ID)

	suite.Require().NoError(suite.service.DeleteTransaction(suite.ctx, t.ID))
	_, err = suite.service.GetTransaction(suite.ctx, t.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.DeleteTransaction(suite.ctx, t.ID), apperrors.ErrNotFound)
	suite.Equal([]domain.LedgerEventType{domain.EventTransactionRecorded, domain.EventTransactionDeleted}, suite.publisher.types())
}

func (suite *TransactionServiceTestSuite) TestList_PagesNewestFirst() {
	var ids []string
	for i := range 5 {
		ids = append(ids, suite.record(float64(i+1), domain.KindExpense, suite.now.Add(time.Duration(i)*time.Hour)).ID)
	}

	first, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(first.Items, 2)
	suite.Equal(ids[4], first.Items[0].ID)
	suite.Equal(ids[3], first.Items[1].ID)
	suite.NotEmpty(first.NextToken)

	// A newer transaction does not shift the following pages.
	suite.record(9, domain.KindExpense, suite.now.Add(24*time.Hour))

	second, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 2, NextToken: first.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(second.Items, 2)
	suite.Equal(ids[2], second.Items[0].ID)
	suite.Equal(ids[1], second.Items[1].ID)

	third, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 2, NextToken: second.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(third.Items, 1)
	suite.Equal(ids[0], third.Items[0].ID)
	suite.Empty(third.NextToken)
}

func (suite *TransactionServiceTestSuite) TestList_FilterByKind() {
	suite.record(10, domain.KindExpense, suite.now)
	income := suite.record(50, domain.KindIncome, suite.now)

	page, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Kind: "income"})

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal(income.ID, page.Items[0].ID)
}

func (suite *TransactionServiceTestSuite) TestList_BadToken() {
	_, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestValuationFollowsBaseChange() {
	t := suite.record(100, domain.KindExpense, suite.now)

	_, err := suite.ledger.SetBaseCurrency(suite.ctx, "EUR")
	suite.Require().NoError(err)

	got, err := suite.service.GetTransaction(suite.ctx, t.ID)
	suite.Require().NoError(err)
	suite.Equal("EUR", got.BaseCurrency)
	// The stored amount has no currency code, so it is read as the new base.
	suite.Equal(100.0, got.BaseAmount)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
