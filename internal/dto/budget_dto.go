package dto

import "github.com/SscSPs/contractor_backoffice/internal/core/domain"

// ProjectBudgetResponse represents a project's budget-vs-actual comparison.
type ProjectBudgetResponse struct {
	ProjectID string                     `json:"projectId"`
	LineItems []domain.BudgetVariance    `json:"lineItems"`
	Rollup    domain.ProjectBudgetRollup `json:"rollup"`
	Alert     *domain.BudgetAlert        `json:"alert,omitempty"`
}

// ToProjectBudgetResponse converts a domain budget report.
func ToProjectBudgetResponse(r *domain.ProjectBudgetReport) ProjectBudgetResponse {
	items := r.LineItems
	if items == nil {
		items = []domain.BudgetVariance{}
	}
	return ProjectBudgetResponse{
		ProjectID: r.ProjectID,
		LineItems: items,
		Rollup:    r.Rollup,
		Alert:     r.Alert,
	}
}
