package accounting

import (
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemVariance compares the budgeted and actual amounts of one line item.
func LineItemVariance(item domain.BudgetLineItem) (domain.BudgetVariance, error) {
	if err := item.Validate(); err != nil {
		return domain.BudgetVariance{}, err
	}
	variance := item.BudgetedAmount.Sub(item.ActualAmount)
	return domain.BudgetVariance{
		LineItemID:         item.ID,
		ProjectID:          item.ProjectID,
		Category:           item.Category,
		BudgetedAmount:     item.BudgetedAmount,
		ActualAmount:       item.ActualAmount,
		Variance:           variance,
		VariancePercentage: percentOf(variance, item.BudgetedAmount),
		OverBudget:         item.ActualAmount.GreaterThan(item.BudgetedAmount),
	}, nil
}

// ProjectRollups sums line items per project, in order of first appearance.
func ProjectRollups(items []domain.BudgetLineItem) ([]domain.ProjectBudgetRollup, error) {
	index := make(map[string]int)
	var rollups []domain.ProjectBudgetRollup

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		i, ok := index[item.ProjectID]
		if !ok {
			i = len(rollups)
			index[item.ProjectID] = i
			rollups = append(rollups, domain.ProjectBudgetRollup{
				ProjectID:     item.ProjectID,
				TotalBudgeted: decimal.Zero,
				TotalActual:   decimal.Zero,
			})
		}
		rollups[i].TotalBudgeted = rollups[i].TotalBudgeted.Add(item.BudgetedAmount)
		rollups[i].TotalActual = rollups[i].TotalActual.Add(item.ActualAmount)
	}

	for i := range rollups {
		r := &rollups[i]
		r.TotalVariance = r.TotalBudgeted.Sub(r.TotalActual)
		r.TotalVariancePercentage = percentOf(r.TotalVariance, r.TotalBudgeted)
		r.OverBudget = r.TotalActual.GreaterThan(r.TotalBudgeted)
	}
	if rollups == nil {
		rollups = []domain.ProjectBudgetRollup{}
	}
	return rollups, nil
}

// ProjectRollup is the rollup of items that all belong to one project.
func ProjectRollup(projectID string, items []domain.BudgetLineItem) (domain.ProjectBudgetRollup, error) {
	var own []domain.BudgetLineItem
	for _, item := range items {
		if item.ProjectID == projectID {
			own = append(own, item)
		}
	}
	rollups, err := ProjectRollups(own)
	if err != nil {
		return domain.ProjectBudgetRollup{}, err
	}
	if len(rollups) == 0 {
		return domain.ProjectBudgetRollup{
			ProjectID:               projectID,
			TotalBudgeted:           decimal.Zero,
			TotalActual:             decimal.Zero,
			TotalVariance:           decimal.Zero,
			TotalVariancePercentage: decimal.Zero,
		}, nil
	}
	return rollups[0], nil
}

// BudgetAlert returns the overspend alert for a rollup, or nil when it is within budget.
func BudgetAlert(r domain.ProjectBudgetRollup) *domain.BudgetAlert {
	if !r.TotalActual.GreaterThan(r.TotalBudgeted) {
		return nil
	}
	overspend := r.TotalActual.Sub(r.TotalBudgeted)
	return &domain.BudgetAlert{
		ProjectID:           r.ProjectID,
		OverspendAmount:     overspend,
		OverspendPercentage: percentOf(overspend, r.TotalBudgeted),
	}
}

// BudgetAlerts flags every over-budget project. Each call is independent; nothing is deduplicated.
func BudgetAlerts(rollups []domain.ProjectBudgetRollup) []domain.BudgetAlert {
	alerts := []domain.BudgetAlert{}
	for _, r := range rollups {
		if alert := BudgetAlert(r); alert != nil {
			alerts = append(alerts, *alert)
		}
	}
	return alerts
}
