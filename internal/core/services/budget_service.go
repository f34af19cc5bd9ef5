package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/SscSPs/contractor_backoffice/internal/utils/accounting"
)

type budgetService struct {
	BaseService
	ledgerRepo portsrepo.LedgerSnapshotReader
}

// NewBudgetService creates the budget variance service.
func NewBudgetService(repo portsrepo.LedgerSnapshotReader, options ...ServiceOption) portssvc.BudgetService {
	return &budgetService{
		BaseService: newBaseService(options...),
		ledgerRepo:  repo,
	}
}

var _ portssvc.BudgetService = (*budgetService)(nil)

// ProjectBudget returns per-line-item variances, the project rollup and its overspend alert, if any.
func (s *budgetService) ProjectBudget(ctx context.Context, workplaceID, projectID, userID string) (*domain.ProjectBudgetReport, error) {
	snap, err := s.authorizedSnapshot(ctx, s.ledgerRepo, workplaceID, userID)
	if err != nil {
		return nil, err
	}
	if !hasProject(snap, projectID) {
		s.LogDebug(ctx, "Project not found", slog.String("workplace_id", workplaceID), slog.String("project_id", projectID))
		return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}

	variances := make([]domain.BudgetVariance, 0)
	for _, item := range snap.BudgetItems {
		if item.ProjectID != projectID {
			continue
		}
		v, err := accounting.LineItemVariance(item)
		if err != nil {
			s.LogError(ctx, err, "Invalid budget line item", slog.String("line_item_id", item.ID))
			return nil, invalidStoredData(err)
		}
		variances = append(variances, v)
	}

	rollup, err := accounting.ProjectRollup(projectID, snap.BudgetItems)
	if err != nil {
		return nil, invalidStoredData(err)
	}

	report := &domain.ProjectBudgetReport{
		ProjectID: projectID,
		LineItems: variances,
		Rollup:    rollup,
		Alert:     accounting.BudgetAlert(rollup),
	}
	s.LogInfo(ctx, "Project budget computed",
		slog.String("project_id", projectID),
		slog.Int("line_items", len(variances)),
		slog.Bool("over_budget", rollup.OverBudget))
	return report, nil
}

func hasProject(snap *domain.LedgerSnapshot, projectID string) bool {
	for _, p := range snap.Projects {
		if p.ID == projectID {
			return true
		}
	}
	return false
}
