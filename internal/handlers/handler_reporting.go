package handlers

import (
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to reports.
// Every amount is expressed in the current base currency.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	ledger           portssvc.CurrencyLedgerReaderSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, ledger portssvc.CurrencyLedgerReaderSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		ledger:           ledger,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService, ledger portssvc.CurrencyLedgerReaderSvc) {
	h := newReportingHandler(rs, ledger)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
		reportingGroup.GET("/categories", h.getCategoryStats)
		reportingGroup.GET("/overall", h.getOverall)
		reportingGroup.GET("/popular-categories", h.getPopularCategories)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Income, expense and balance totals plus the average expense and the largest expense category
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getCategoryStats godoc
// @Summary Per-category totals
// @Description Categories with at least one transaction, largest total first
// @Tags reports
// @Produce json
// @Param kind query string false "expense or income"
// @Success 200 {object} dto.CategoryStatsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getCategoryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	ctx := c.Request.Context()
	stats, largest, err := h.reportingService.CategoryStats(ctx, domain.TransactionKind(params.Kind))
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	base := h.ledger.CurrentBase(ctx).Code
	c.JSON(http.StatusOK, dto.ToCategoryStatsResponse(stats, largest, base, params.Kind))
}

// getOverall godoc
// @Summary Count and mean
// @Tags reports
// @Produce json
// @Param kind query string false "expense or income"
// @Success 200 {object} dto.OverallStatsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /reports/overall [get]
func (h *reportingHandler) getOverall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	ctx := c.Request.Context()
	overall, err := h.reportingService.Overall(ctx, domain.TransactionKind(params.Kind))
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	base := h.ledger.CurrentBase(ctx).Code
	c.JSON(http.StatusOK, dto.ToOverallStatsResponse(overall, base, params.Kind))
}

// getPopularCategories godoc
// @Summary Most used categories
// @Description Ranked by transaction count, padded with built-in categories
// @Tags reports
// @Produce json
// @Param limit query int false "How many (default 5)"
// @Success 200 {object} dto.PopularCategoriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /reports/popular-categories [get]
func (h *reportingHandler) getPopularCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PopularCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	categories, err := h.reportingService.PopularCategories(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.PopularCategoriesResponse{Categories: dto.ToListCategoryResponse(categories)})
}
