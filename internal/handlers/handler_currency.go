package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the configured currency set.
type currencyHandler struct {
	ledger portssvc.CurrencyLedgerSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(ledger portssvc.CurrencyLedgerSvcFacade) *currencyHandler {
	return &currencyHandler{ledger: ledger}
}

// registerCurrencyRoutes registers routes related to currencies and the registry catalog.
func registerCurrencyRoutes(rg *gin.RouterGroup, ledger portssvc.CurrencyLedgerSvcFacade) {
	h := newCurrencyHandler(ledger)

	rg.GET("/registry/currencies", h.listRegistry)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.addCurrency)
		currencies.GET("/base", h.getBaseCurrency)
		currencies.PUT("/base", h.setBaseCurrency)
		currencies.GET("/convert", h.convert)
		currencies.PUT("/:code/rate", h.updateExchangeRate)
		currencies.DELETE("/:code", h.removeCurrency)
	}
}

// listRegistry godoc
// @Summary List supported currencies
// @Description Returns the fixed catalog of currencies that can be configured
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyDefinitionResponse
// @Security BearerAuth
// @Router /registry/currencies [get]
func (h *currencyHandler) listRegistry(c *gin.Context) {
	defs := registry.List()
	res := make([]dto.CurrencyDefinitionResponse, len(defs))
	for i, d := range defs {
		res[i] = dto.ToCurrencyDefinitionResponse(d)
	}
	c.JSON(http.StatusOK, res)
}

// listCurrencies godoc
// @Summary List configured currencies
// @Description Retrieves the active currency set in the order it was configured
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyConfigResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	items := h.ledger.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyConfigResponse(items))
}

// addCurrency godoc
// @Summary Add a currency
// @Description Adds a registry currency to the active set with its rate to the base currency
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.AddCurrencyRequest true "Currency and rate"
// @Success 201 {object} dto.CurrencyConfigResponse
// @Failure 400 {object} ErrorResponse "Invalid input, duplicate, limit reached or bad rate"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("currency_code", req.CurrencyCode))
	added, err := h.ledger.AddCurrency(c.Request.Context(), req.CurrencyCode, req.ExchangeRate)
	if err != nil {
		respondError(c, logger, err, "Failed to add currency")
		return
	}

	logger.Info("Currency added", slog.Float64("exchange_rate", added.ExchangeRate))
	c.JSON(http.StatusCreated, dto.ToCurrencyConfigResponse(*added))
}

// removeCurrency godoc
// @Summary Remove a currency
// @Description Removes a non-base currency from the active set
// @Tags currencies
// @Param code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 204
// @Failure 400 {object} ErrorResponse "Base currency or not configured"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /currencies/{code} [delete]
func (h *currencyHandler) removeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))

	if err := h.ledger.RemoveCurrency(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, logger, err, "Failed to remove currency")
		return
	}

	logger.Info("Currency removed")
	c.Status(http.StatusNoContent)
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Description Sets the rate of a non-base currency relative to the base
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param rate body dto.UpdateExchangeRateRequest true "New rate"
// @Success 200 {object} dto.CurrencyConfigResponse
// @Failure 400 {object} ErrorResponse "Base currency, bad rate or not configured"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /currencies/{code}/rate [put]
func (h *currencyHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	updated, err := h.ledger.UpdateExchangeRate(c.Request.Context(), c.Param("code"), req.ExchangeRate)
	if err != nil {
		respondError(c, logger, err, "Failed to update exchange rate")
		return
	}

	logger.Info("Exchange rate updated", slog.Float64("exchange_rate", updated.ExchangeRate))
	c.JSON(http.StatusOK, dto.ToCurrencyConfigResponse(*updated))
}

// getBaseCurrency godoc
// @Summary Get the base currency
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.CurrencyConfigResponse
// @Security BearerAuth
// @Router /currencies/base [get]
func (h *currencyHandler) getBaseCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyConfigResponse(h.ledger.CurrentBase(c.Request.Context())))
}

// setBaseCurrency godoc
// @Summary Change the base currency
// @Description Makes a configured currency the base and rebases every other rate onto it
// @Tags currencies
// @Accept json
// @Produce json
// @Param base body dto.SetBaseCurrencyRequest true "New base"
// @Success 200 {array} dto.CurrencyConfigResponse
// @Failure 400 {object} ErrorResponse "Not configured"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /currencies/base [put]
func (h *currencyHandler) setBaseCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBaseCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	items, err := h.ledger.SetBaseCurrency(c.Request.Context(), req.CurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to change base currency")
		return
	}

	logger.Info("Base currency changed", slog.String("currency_code", req.CurrencyCode))
	c.JSON(http.StatusOK, dto.ToListCurrencyConfigResponse(items))
}

// convert godoc
// @Summary Convert an amount to the base currency
// @Description Unconfigured codes convert at face value
// @Tags currencies
// @Produce json
// @Param amount query number true "Amount"
// @Param code query string true "Currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a number"})
		return
	}
	code := domain.NormalizeCurrencyCode(c.Query("code"))

	ctx := c.Request.Context()
	base := h.ledger.CurrentBase(ctx)
	converted := h.ledger.ConvertToBase(ctx, amount, code)
	if code == "" {
		code = base.Code
	}
	c.JSON(http.StatusOK, dto.ToConvertResponse(amount, code, base.Code, converted))
}
