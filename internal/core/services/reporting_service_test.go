package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ledger       portssvc.CurrencyLedgerSvcFacade
	transactions portssvc.TransactionSvcFacade
	service      portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	kv := memory.NewKVRepository()

	suite.ledger = services.NewCurrencyLedgerService(kv)
	_, err := suite.ledger.Initialize(suite.ctx)
	suite.Require().NoError(err)
	_, err = suite.ledger.AddCurrency(suite.ctx, "EUR", 2)
	suite.Require().NoError(err)

	categories := services.NewCategoryService(kv)
	suite.transactions = services.NewTransactionService(kv, suite.ledger, categories)
	suite.service = services.NewReportingService(suite.ledger, suite.transactions, categories)
}

func (suite *ReportingServiceTestSuite) record(amount float64, currency, category string, kind domain.TransactionKind) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := suite.transactions.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount:       amount,
		CategoryID:   category,
		Kind:         string(kind),
		CurrencyCode: currency,
		Timestamp:    &at,
	})
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestCategoryStats_NormalizesToBase() {
	suite.record(10, "", "food", domain.KindExpense)
	suite.record(10, "EUR", "food", domain.KindExpense)
	suite.record(25, "", "transport", domain.KindExpense)
	suite.record(500, "", "salary", domain.KindIncome)

	stats, largest, err := suite.service.CategoryStats(suite.ctx, domain.KindExpense)

	suite.Require().NoError(err)
	suite.Require().Len(stats, 2)
	suite.Equal("food", stats[0].Category.ID)
	suite.Equal(2, stats[0].Count)
	suite.InDelta(30.0, stats[0].Total, 1e-9)
	suite.Equal("transport", stats[1].Category.ID)
	suite.Require().NotNil(largest)
	suite.Equal("food", largest.Category.ID)
}

func (suite *ReportingServiceTestSuite) TestOverall() {
	suite.record(10, "", "food", domain.KindExpense)
	suite.record(10, "EUR", "food", domain.KindExpense)

	overall, err := suite.service.Overall(suite.ctx, domain.KindExpense)

	suite.Require().NoError(err)
	suite.Equal(2, overall.Count)
	suite.InDelta(15.0, overall.Mean, 1e-9)
}

func (suite *ReportingServiceTestSuite) TestOverall_Empty() {
	overall, err := suite.service.Overall(suite.ctx, "")

	suite.Require().NoError(err)
	suite.Equal(domain.OverallStats{}, overall)
}

func (suite *ReportingServiceTestSuite) TestPopularCategories() {
	suite.record(1, "", "home", domain.KindExpense)
	suite.record(1, "", "salary", domain.KindIncome)
	suite.record(1, "", "salary", domain.KindIncome)

	popular, err := suite.service.PopularCategories(suite.ctx, 3)

	suite.Require().NoError(err)
	suite.Require().Len(popular, 3)
	suite.Equal("salary", popular[0].ID)
	suite.Equal("home", popular[1].ID)
	suite.Equal("food", popular[2].ID)
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	suite.record(10, "EUR", "food", domain.KindExpense)
	suite.record(40, "", "bills", domain.KindExpense)
	suite.record(100, "", "salary", domain.KindIncome)

	summary, err := suite.service.Summary(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal("USD", summary.BaseCurrency)
	suite.InDelta(100.0, summary.Totals.Income, 1e-9)
	suite.InDelta(60.0, summary.Totals.Expense, 1e-9)
	suite.InDelta(40.0, summary.Totals.Balance, 1e-9)
	suite.Equal(2, summary.Expenses.Count)
	suite.InDelta(30.0, summary.Expenses.Mean, 1e-9)
	suite.Require().NotNil(summary.LargestCategory)
	suite.Equal("bills", summary.LargestCategory.Category.ID)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
