package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/SscSPs/contractor_backoffice/internal/dto"
	"github.com/SscSPs/contractor_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetService
}

func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetService) {
	h := &budgetHandler{budgetService: bs}
	rg.GET("/projects/:project_id/budget", h.getProjectBudget)
}

// getProjectBudget godoc
// @Summary Compare a project's budget with actual spend
// @Tags budgets
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectBudgetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute budget"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/projects/{project_id}/budget [get]
func (h *budgetHandler) getProjectBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}
	projectID := c.Param("project_id")
	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("project_id", projectID))

	report, err := h.budgetService.ProjectBudget(c.Request.Context(), workplaceID, projectID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectBudgetResponse(report))
}
