package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/pennyledger/pennyledger_app/internal/core/ports/services"
	"github.com/pennyledger/pennyledger_app/internal/dto"
	"github.com/pennyledger/pennyledger_app/internal/middleware"
)

// DashboardHandler serves the read-only cross-account dashboard.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetDashboard godoc
// @Summary Cross-account dashboard
// @Description Returns all accounts, the ten most recent transactions across them, and summary statistics
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
