package services

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// BudgetService compares budgeted and actual project costs.
type BudgetService interface {
	ProjectBudget(ctx context.Context, workplaceID, projectID, userID string) (*domain.ProjectBudgetReport, error)
}
