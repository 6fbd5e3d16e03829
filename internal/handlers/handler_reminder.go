package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reminderHandler struct {
	reminder portssvc.ReminderSvc
}

func registerReminderRoutes(rg *gin.RouterGroup, reminder portssvc.ReminderSvc) {
	h := &reminderHandler{reminder: reminder}

	reminderGroup := rg.Group("/reminder")
	{
		reminderGroup.GET("", h.getReminder)
		reminderGroup.POST("/dismiss", h.dismissReminder)
		reminderGroup.POST("/show", h.showReminder)
	}
}

func (h *reminderHandler) response() dto.ReminderResponse {
	return dto.ReminderResponse{ShouldShow: h.reminder.ShouldShow(), State: h.reminder.State()}
}

// getReminder godoc
// @Summary Daily reminder state
// @Tags reminder
// @Produce json
// @Success 200 {object} dto.ReminderResponse
// @Security BearerAuth
// @Router /reminder [get]
func (h *reminderHandler) getReminder(c *gin.Context) {
	c.JSON(http.StatusOK, h.response())
}

// dismissReminder godoc
// @Summary Dismiss the reminder until tomorrow
// @Description The reminder stays hidden for this process even when saving the dismissal fails
// @Tags reminder
// @Produce json
// @Success 200 {object} dto.ReminderResponse
// @Failure 503 {object} ErrorResponse "Dismissal not saved"
// @Security BearerAuth
// @Router /reminder/dismiss [post]
func (h *reminderHandler) dismissReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.reminder.Dismiss(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to save dismissal")
		return
	}
	c.JSON(http.StatusOK, h.response())
}

// showReminder godoc
// @Summary Show the reminder again
// @Description Not persisted; the next start decides from the stored dismissal
// @Tags reminder
// @Produce json
// @Success 200 {object} dto.ReminderResponse
// @Security BearerAuth
// @Router /reminder/show [post]
func (h *reminderHandler) showReminder(c *gin.Context) {
	h.reminder.ForceShow()
	c.JSON(http.StatusOK, h.response())
}
