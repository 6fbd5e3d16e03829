package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyLedger ---
type MockCurrencyLedger struct {
	mock.Mock
}

func (m *MockCurrencyLedger) Lookup(ctx context.Context, code string) (domain.CurrencyConfig, bool) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.CurrencyConfig), args.Bool(1)
}
func (m *MockCurrencyLedger) CurrentBase(ctx context.Context) domain.CurrencyConfig {
	args := m.Called(ctx)
	return args.Get(0).(domain.CurrencyConfig)
}
func (m *MockCurrencyLedger) ListCurrencies(ctx context.Context) []domain.CurrencyConfig {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CurrencyConfig)
}
func (m *MockCurrencyLedger) ConvertToBase(ctx context.Context, amount float64, code string) float64 {
	args := m.Called(ctx, amount, code)
	return args.Get(0).(float64)
}
func (m *MockCurrencyLedger) Initialize(ctx context.Context) ([]domain.CurrencyConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyConfig), args.Error(1)
}
func (m *MockCurrencyLedger) AddCurrency(ctx context.Context, code string, rate float64) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, code, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}
func (m *MockCurrencyLedger) RemoveCurrency(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
func (m *MockCurrencyLedger) UpdateExchangeRate(ctx context.Context, code string, rate float64) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, code, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}
func (m *MockCurrencyLedger) SetBaseCurrency(ctx context.Context, code string) ([]domain.CurrencyConfig, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyConfig), args.Error(1)
}

var _ portssvc.CurrencyLedgerSvcFacade = (*MockCurrencyLedger)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) CreateCustomCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCustomCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.ValuedTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedTransaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}
func (m *MockTransactionService) AllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ValuedTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.ValuedTransaction, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValuedTransaction), args.Error(1)
}
func (m *MockTransactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.ValuedTransaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedTransaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) CategoryStats(ctx context.Context, kind domain.TransactionKind) ([]domain.CategoryStat, *domain.CategoryStat, error) {
	args := m.Called(ctx, kind)
	var largest *domain.CategoryStat
	if l := args.Get(1); l != nil {
		largest = l.(*domain.CategoryStat)
	}
	if args.Get(0) == nil {
		return nil, largest, args.Error(2)
	}
	return args.Get(0).([]domain.CategoryStat), largest, args.Error(2)
}
func (m *MockReportingService) Overall(ctx context.Context, kind domain.TransactionKind) (domain.OverallStats, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(domain.OverallStats), args.Error(1)
}
func (m *MockReportingService) PopularCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockReportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ReminderService ---
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) Initialize(ctx context.Context) domain.GateState {
	args := m.Called(ctx)
	return args.Get(0).(domain.GateState)
}
func (m *MockReminderService) ShouldShow() bool {
	return m.Called().Bool(0)
}
func (m *MockReminderService) State() domain.GateState {
	return m.Called().Get(0).(domain.GateState)
}
func (m *MockReminderService) Dismiss(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockReminderService) ForceShow() {
	m.Called()
}

var _ portssvc.ReminderSvc = (*MockReminderService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Enabled() bool {
	return m.Called().Bool(0)
}
func (m *MockAuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockAuthService) ValidateToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)
