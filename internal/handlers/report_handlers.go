package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// ReportHandler serves the read-only reports
type ReportHandler struct {
	reports interfaces.ReportAggregator
	logger  *zap.Logger
}

func NewReportHandler(reports interfaces.ReportAggregator, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// GetReport godoc
// @Summary Generate a report
// @Description Builds a sales, customers, status or services report over an inclusive date range of at most 366 days
// @Tags reports
// @Produce json
// @Param kind path string true "Report kind" Enums(sales, customers, status, services)
// @Param start_date query string true "First day, YYYY-MM-DD"
// @Param end_date query string true "Last day, YYYY-MM-DD"
// @Param top query int false "Number of top customers (customers report only)"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/{kind} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	kind := business.ReportKind(c.Param("kind"))
	if !kind.IsValid() {
		sendError(c, h.logger, http.StatusBadRequest, "Unknown report kind "+string(kind), nil)
		return
	}

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "start_date and end_date are required", err)
		return
	}
	start, err := helpers.ParseDate(query.StartDate)
	if err != nil {
		sendError(c, h.logger, http.StatusBadRequest, err.Error(), err)
		return
	}
	end, err := helpers.ParseDate(query.EndDate)
	if err != nil {
		sendError(c, h.logger, http.StatusBadRequest, err.Error(), err)
		return
	}

	var report business.Report
	if kind == business.ReportKindCustomers && query.Top > 0 {
		var customers *business.CustomerReport
		customers, err = h.reports.CustomerReport(c.Request.Context(), start, end, query.Top)
		if err == nil {
			report = customers
		}
	} else {
		report, err = h.reports.GenerateReport(c.Request.Context(), kind, start, end)
	}
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusOK, ReportResponse{Kind: kind, Report: report})
}
