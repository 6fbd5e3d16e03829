package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/export"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	categoryService    portssvc.CategoryReaderSvc
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, cs portssvc.CategoryReaderSvc) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		categoryService:    cs,
	}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, cs portssvc.CategoryReaderSvc) {
	h := newTransactionHandler(ts, cs)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.recordTransaction)
		transactions.GET("/export", h.exportTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

func toTransactionResponse(t domain.ValuedTransaction) dto.TransactionResponse {
	return dto.ToTransactionResponse(t.Transaction, t.BaseCurrency, t.BaseAmount, t.Band)
}

// recordTransaction godoc
// @Summary Record an income or expense
// @Description An empty currencyCode records the amount in the base currency
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	recorded, err := h.transactionService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(*recorded))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first, paginated with nextToken
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Token from the previous page"
// @Param kind query string false "expense or income"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	res := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, len(page.Items)),
		NextToken:    page.NextToken,
	}
	for i, t := range page.Items {
		res.Transactions[i] = toTransactionResponse(t)
	}
	c.JSON(http.StatusOK, res)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	t, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(*t))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}

// exportTransactions godoc
// @Summary Export transactions
// @Description Every transaction, newest first, with base-currency amounts
// @Tags transactions
// @Produce text/csv
// @Produce application/yaml
// @Param format query string false "csv (default) or yaml"
// @Param kind query string false "expense or income"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txns, err := h.transactionService.ValuedTransactions(ctx, domain.TransactionKind(params.Kind))
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, export.NewRows(txns, categories)); err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}

	filename := fmt.Sprintf("transactions-%s.%s", time.Now().UTC().Format("20060102"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	logger.Info("Transactions exported", slog.String("format", string(format)), slog.Int("count", len(txns)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
