package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/SscSPs/contractor_backoffice/internal/dto"
	"github.com/SscSPs/contractor_backoffice/internal/middleware"
	"github.com/SscSPs/contractor_backoffice/internal/utils"
	"github.com/SscSPs/contractor_backoffice/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	defaultTimeframe domain.TimeframeMode
	posthogClient    *utils.PosthogClientWrapper
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, defaultTimeframe domain.TimeframeMode, posthogClient *utils.PosthogClientWrapper) *reportingHandler {
	if defaultTimeframe == "" {
		defaultTimeframe = domain.Trailing6Months
	}
	return &reportingHandler{
		reportingService: rs,
		defaultTimeframe: defaultTimeframe,
		posthogClient:    posthogClient,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, h *reportingHandler) {
	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/financial", h.getFinancialReport)
		reportingGroup.GET("/financial.csv", h.exportFinancialReport)
	}
}

// getFinancialReport godoc
// @Summary Generate the financial report
// @Description Aggregates revenue, expenses, recurring costs, budgets and invoices of a workplace into one report
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param timeframe query string false "Timeframe (6m, 12m, 24m, 4q, forecast)"
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} map[string]string "Invalid timeframe"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reports/financial [get]
func (h *reportingHandler) getFinancialReport(c *gin.Context) {
	report, logger, ok := h.buildReport(c)
	if !ok {
		return
	}

	logger.Info("Financial report generated", slog.Int("periods", len(report.Periods)))
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// exportFinancialReport godoc
// @Summary Export the report's period series as CSV
// @Tags reports
// @Produce text/csv
// @Param workplace_id path string true "Workplace ID"
// @Param timeframe query string false "Timeframe (6m, 12m, 24m, 4q, forecast)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string "Invalid timeframe"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reports/financial.csv [get]
func (h *reportingHandler) exportFinancialReport(c *gin.Context) {
	report, logger, ok := h.buildReport(c)
	if !ok {
		return
	}

	body, err := gocsv.MarshalBytes(dto.ToPeriodCSVRows(report))
	if err != nil {
		logger.Error("Failed to encode report CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	filename := fmt.Sprintf("financial-report-%s-%s.csv", report.Timeframe, report.GeneratedAt.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)

	middleware.PosthogEvent(c, h.posthogClient, "financial_report_exported", map[string]any{
		"timeframe": string(report.Timeframe),
		"periods":   len(report.Periods),
	})
}

func (h *reportingHandler) buildReport(c *gin.Context) (*domain.FinancialReport, *slog.Logger, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c, logger)
	if !ok {
		return nil, logger, false
	}

	mode, err := accounting.ParseTimeframe(c.DefaultQuery("timeframe", string(h.defaultTimeframe)))
	if err != nil {
		logger.Warn("Invalid timeframe", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, logger, false
	}

	logger = logger.With(
		slog.String("workplace_id", workplaceID),
		slog.String("user_id", userID),
		slog.String("timeframe", string(mode)),
	)

	report, err := h.reportingService.FinancialReport(c.Request.Context(), workplaceID, mode, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return nil, logger, false
	}
	return report, logger, true
}
