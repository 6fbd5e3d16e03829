package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Built-in categories followed by custom ones
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// createCategory godoc
// @Summary Create a custom category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Name already used"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	created, err := h.categoryService.CreateCustomCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}

	logger.Info("Category created", slog.String("category_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*created))
}

// deleteCategory godoc
// @Summary Delete a custom category
// @Tags categories
// @Param categoryID path string true "Category ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Built-in category"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	if err := h.categoryService.DeleteCustomCategory(c.Request.Context(), categoryID); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}
