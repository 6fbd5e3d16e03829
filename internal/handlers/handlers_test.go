package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/handlers"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	usd = domain.CurrencyConfig{Code: "USD", DisplayName: "US Dollar", Symbol: "$", ExchangeRate: 1, IsBase: true}
	eur = domain.CurrencyConfig{Code: "EUR", DisplayName: "Euro", Symbol: "€", ExchangeRate: 1.1}
)

type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ledger       *MockCurrencyLedger
	categories   *MockCategoryService
	transactions *MockTransactionService
	reporting    *MockReportingService
	reminder     *MockReminderService
	auth         *MockAuthService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ledger = new(MockCurrencyLedger)
	suite.categories = new(MockCategoryService)
	suite.transactions = new(MockTransactionService)
	suite.reporting = new(MockReportingService)
	suite.reminder = new(MockReminderService)
	suite.auth = new(MockAuthService)

	container := &portssvc.ServiceContainer{
		Currency:    suite.ledger,
		Category:    suite.categories,
		Transaction: suite.transactions,
		Reporting:   suite.reporting,
		Reminder:    suite.reminder,
		Auth:        suite.auth,
	}
	cfg := &config.Config{IsProduction: true, LoginRateLimit: "100-M"}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))
}

// localMode disables auth for the request under test.
func (suite *HandlersTestSuite) localMode() {
	suite.auth.On("Enabled").Return(false)
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var res handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res.Error
}

// --- Public routes ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestLogin() {
	expires := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.auth.On("Login", mock.Anything, "secret").Return("signed", expires, nil)

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Password: "secret"})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("signed", res.Token)
	suite.True(expires.Equal(res.ExpiresAt))
}

func (suite *HandlersTestSuite) TestLogin_WrongPassword() {
	suite.auth.On("Login", mock.Anything, "nope").Return("", time.Time{}, apperrors.ErrUnauthorized)

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Password: "nope"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestAuthRequiredWhenEnabled() {
	suite.auth.On("Enabled").Return(true)

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything)
}

func (suite *HandlersTestSuite) TestValidTokenAccepted() {
	suite.auth.On("Enabled").Return(true)
	suite.auth.On("ValidateToken", "good").Return("owner", nil)
	suite.ledger.On("ListCurrencies", mock.Anything).Return([]domain.CurrencyConfig{usd})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Currencies ---

func (suite *HandlersTestSuite) TestListRegistry() {
	suite.localMode()

	w := suite.do(http.MethodGet, "/api/v1/registry/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyDefinitionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.NotEmpty(res)
}

func (suite *HandlersTestSuite) TestListCurrencies() {
	suite.localMode()
	suite.ledger.On("ListCurrencies", mock.Anything).Return([]domain.CurrencyConfig{usd, eur})

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 2)
	suite.True(res[0].IsBase)
	suite.Equal("EUR", res[1].CurrencyCode)
}

func (suite *HandlersTestSuite) TestAddCurrency() {
	suite.localMode()
	suite.ledger.On("AddCurrency", mock.Anything, "eur", 1.1).Return(&eur, nil)

	w := suite.do(http.MethodPost, "/api/v1/currencies", dto.AddCurrencyRequest{CurrencyCode: "eur", ExchangeRate: 1.1})

	suite.Equal(http.StatusCreated, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestAddCurrency_UnknownCodeReasonReturnedVerbatim() {
	suite.localMode()
	unknown := fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, "ZZZ")
	suite.ledger.On("AddCurrency", mock.Anything, "ZZZ", 1.0).Return(nil, unknown)

	w := suite.do(http.MethodPost, "/api/v1/currencies", dto.AddCurrencyRequest{CurrencyCode: "ZZZ", ExchangeRate: 1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(unknown.Error(), suite.errorMessage(w))
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestAddCurrency_LimitCheckedBeforeUnknownCode() {
	suite.localMode()
	suite.ledger.On("AddCurrency", mock.Anything, "ZZZ", 1.0).Return(nil, apperrors.ErrLimitExceeded)

	w := suite.do(http.MethodPost, "/api/v1/currencies", dto.AddCurrencyRequest{CurrencyCode: "ZZZ", ExchangeRate: 1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.ErrLimitExceeded.Error(), suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestSetBaseCurrency_UnknownCodeIsNotConfigured() {
	suite.localMode()
	notConfigured := fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotConfigured, "ZZZ")
	suite.ledger.On("SetBaseCurrency", mock.Anything, "ZZZ").Return(nil, notConfigured)

	w := suite.do(http.MethodPut, "/api/v1/currencies/base", dto.SetBaseCurrencyRequest{CurrencyCode: "ZZZ"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(notConfigured.Error(), suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestAddCurrency_ServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"limit", apperrors.ErrLimitExceeded, http.StatusBadRequest},
		{"duplicate", apperrors.ErrDuplicateCurrency, http.StatusBadRequest},
		{"rate", apperrors.ErrInvalidRate, http.StatusBadRequest},
		{"storage", apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.localMode()
			suite.ledger.On("AddCurrency", mock.Anything, "GBP", 0.8).Return(nil, tc.err)

			w := suite.do(http.MethodPost, "/api/v1/currencies", dto.AddCurrencyRequest{CurrencyCode: "GBP", ExchangeRate: 0.8})

			suite.Equal(tc.status, w.Code)
			if tc.status == http.StatusBadRequest {
				suite.Equal(tc.err.Error(), suite.errorMessage(w))
			}
		})
	}
}

func (suite *HandlersTestSuite) TestRemoveCurrency() {
	suite.localMode()
	suite.ledger.On("RemoveCurrency", mock.Anything, "EUR").Return(nil)
	suite.ledger.On("RemoveCurrency", mock.Anything, "USD").Return(apperrors.ErrCannotRemoveBase)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/currencies/EUR", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodDelete, "/api/v1/currencies/USD", nil).Code)
}

func (suite *HandlersTestSuite) TestUpdateExchangeRate() {
	suite.localMode()
	updated := eur
	updated.ExchangeRate = 1.2
	suite.ledger.On("UpdateExchangeRate", mock.Anything, "EUR", 1.2).Return(&updated, nil)

	w := suite.do(http.MethodPut, "/api/v1/currencies/EUR/rate", dto.UpdateExchangeRateRequest{ExchangeRate: 1.2})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CurrencyConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(1.2, res.ExchangeRate)
}

func (suite *HandlersTestSuite) TestSetAndGetBase() {
	suite.localMode()
	suite.ledger.On("SetBaseCurrency", mock.Anything, "EUR").Return([]domain.CurrencyConfig{eur, usd}, nil)
	suite.ledger.On("CurrentBase", mock.Anything).Return(usd)

	suite.Equal(http.StatusOK, suite.do(http.MethodPut, "/api/v1/currencies/base", dto.SetBaseCurrencyRequest{CurrencyCode: "EUR"}).Code)

	w := suite.do(http.MethodGet, "/api/v1/currencies/base", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"currencyCode":"USD"`)
}

func (suite *HandlersTestSuite) TestConvert() {
	suite.localMode()
	suite.ledger.On("CurrentBase", mock.Anything).Return(usd)
	suite.ledger.On("ConvertToBase", mock.Anything, 10.0, "EUR").Return(11.0)

	w := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=10&code=eur", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(11.0, res.Converted)
	suite.Equal("11.00", res.ConvertedString)
	suite.Equal("USD", res.BaseCurrency)
}

func (suite *HandlersTestSuite) TestConvert_BadAmount() {
	suite.localMode()

	w := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=ten&code=EUR", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Categories ---

func (suite *HandlersTestSuite) TestCreateCategory_Duplicate() {
	suite.localMode()
	req := dto.CreateCategoryRequest{Name: "Food"}
	suite.categories.On("CreateCustomCategory", mock.Anything, req).Return(nil, apperrors.ErrDuplicate)

	w := suite.do(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteCategory_NotFound() {
	suite.localMode()
	suite.categories.On("DeleteCustomCategory", mock.Anything, "missing").Return(apperrors.ErrNotFound)

	w := suite.do(http.MethodDelete, "/api/v1/categories/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Transactions ---

func (suite *HandlersTestSuite) sampleTransaction() domain.ValuedTransaction {
	return domain.ValuedTransaction{
		Transaction: domain.Transaction{
			ID:           "t1",
			Amount:       20,
			CategoryID:   "food",
			Kind:         domain.KindExpense,
			CurrencyCode: "EUR",
			Timestamp:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		BaseCurrency: "USD",
		BaseAmount:   22,
		Band:         domain.BandNormal,
	}
}

func (suite *HandlersTestSuite) TestRecordTransaction() {
	suite.localMode()
	t := suite.sampleTransaction()
	suite.transactions.On("RecordTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Amount == 20 && req.CategoryID == "food" && req.CurrencyCode == "EUR"
	})).Return(&t, nil)

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"amount": 20, "categoryID": "food", "kind": "expense", "currencyCode": "EUR",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("22.00", res.BaseAmountFormatted)
	suite.Equal(domain.BandNormal, res.Band)
}

func (suite *HandlersTestSuite) TestRecordTransaction_BindingErrors() {
	suite.localMode()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"amount": 20, "categoryID": "food", "kind": "transfer",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListTransactions() {
	suite.localMode()
	params := dto.ListTransactionsParams{Limit: 1, NextToken: "abc", Kind: "expense"}
	suite.transactions.On("ListTransactions", mock.Anything, params).
		Return(&domain.TransactionPage{Items: []domain.ValuedTransaction{suite.sampleTransaction()}, NextToken: "next"}, nil)

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=1&nextToken=abc&kind=expense", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Transactions, 1)
	suite.Equal("next", res.NextToken)
}

func (suite *HandlersTestSuite) TestListTransactions_BadToken() {
	suite.localMode()
	suite.transactions.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, apperrors.ErrValidation)

	w := suite.do(http.MethodGet, "/api/v1/transactions?nextToken=zzz", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetTransaction_NotFound() {
	suite.localMode()
	suite.transactions.On("GetTransaction", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound)

	w := suite.do(http.MethodGet, "/api/v1/transactions/nope", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestExportTransactions_CSV() {
	suite.localMode()
	suite.transactions.On("ValuedTransactions", mock.Anything, domain.TransactionKind("")).
		Return([]domain.ValuedTransaction{suite.sampleTransaction()}, nil)
	suite.categories.On("ListCategories", mock.Anything).Return([]domain.Category{{ID: "food", Name: "Food"}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/transactions/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), ".csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	suite.Len(lines, 2)
	suite.Contains(lines[1], "Food")
}

func (suite *HandlersTestSuite) TestExportTransactions_UnsupportedFormat() {
	suite.localMode()

	w := suite.do(http.MethodGet, "/api/v1/transactions/export?format=xml", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Reports ---

func (suite *HandlersTestSuite) TestSummary() {
	suite.localMode()
	suite.reporting.On("Summary", mock.Anything).Return(&domain.Summary{
		BaseCurrency: "USD",
		Totals:       domain.Totals{Income: 100, Expense: 40, Balance: 60},
		Expenses:     domain.OverallStats{Count: 2, Mean: 20},
	}, nil)

	w := suite.do(http.MethodGet, "/api/v1/reports/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("60.00", res.Balance)
	suite.Nil(res.LargestCategory)
}

func (suite *HandlersTestSuite) TestCategoryStats() {
	suite.localMode()
	stat := domain.CategoryStat{Category: domain.Category{ID: "food", Name: "Food"}, Count: 2, Total: 30}
	suite.reporting.On("CategoryStats", mock.Anything, domain.KindExpense).Return([]domain.CategoryStat{stat}, &stat, nil)
	suite.ledger.On("CurrentBase", mock.Anything).Return(usd)

	w := suite.do(http.MethodGet, "/api/v1/reports/categories?kind=expense", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CategoryStatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotNil(res.LargestCategory)
	suite.Equal("30.00", res.LargestCategory.TotalFormatted)
}

func (suite *HandlersTestSuite) TestOverall_BadKind() {
	suite.localMode()

	w := suite.do(http.MethodGet, "/api/v1/reports/overall?kind=gift", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPopularCategories() {
	suite.localMode()
	suite.reporting.On("PopularCategories", mock.Anything, 3).Return([]domain.Category{{ID: "food"}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/reports/popular-categories?limit=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"categoryID":"food"`)
}

// --- Reminder ---

func (suite *HandlersTestSuite) TestReminderDismiss() {
	suite.localMode()
	suite.reminder.On("Dismiss", mock.Anything).Return(nil)
	suite.reminder.On("ShouldShow").Return(false)
	suite.reminder.On("State").Return(domain.GateDismissedToday)

	w := suite.do(http.MethodPost, "/api/v1/reminder/dismiss", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ReminderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.ShouldShow)
	suite.Equal(domain.GateDismissedToday, res.State)
}

func (suite *HandlersTestSuite) TestReminderDismiss_StorageFailure() {
	suite.localMode()
	suite.reminder.On("Dismiss", mock.Anything).Return(apperrors.ErrStorageUnavailable)

	w := suite.do(http.MethodPost, "/api/v1/reminder/dismiss", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlersTestSuite) TestReminderShow() {
	suite.localMode()
	suite.reminder.On("ForceShow").Return()
	suite.reminder.On("ShouldShow").Return(true)
	suite.reminder.On("State").Return(domain.GateShown)

	w := suite.do(http.MethodPost, "/api/v1/reminder/show", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.reminder.AssertCalled(suite.T(), "ForceShow")
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
