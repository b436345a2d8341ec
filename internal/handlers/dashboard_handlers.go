package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboards interfaces.DashboardProvider
	logger     *zap.Logger
}

func NewDashboardHandler(dashboards interfaces.DashboardProvider, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, logger: logger}
}

// GetAdminDashboard godoc
// @Summary Admin dashboard
// @Description Twelve month overview of revenue, payments, customers and services
// @Tags dashboards
// @Produce json
// @Success 200 {object} business.AdminDashboard
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/admin [get]
func (h *DashboardHandler) GetAdminDashboard(c *gin.Context) {
	dash, err := h.dashboards.AdminDashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendSuccess(c, http.StatusOK, dash)
}

// GetUserDashboard godoc
// @Summary Counter dashboard
// @Description Today's activity, processing queues, pending payments and alerts
// @Tags dashboards
// @Produce json
// @Success 200 {object} business.UserDashboard
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/user [get]
func (h *DashboardHandler) GetUserDashboard(c *gin.Context) {
	dash, err := h.dashboards.UserDashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendSuccess(c, http.StatusOK, dash)
}
