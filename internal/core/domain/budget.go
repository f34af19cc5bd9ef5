package domain

import (
	"fmt"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BudgetLineItem is a single budgeted category on a project with its actual spend.
type BudgetLineItem struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"projectId"`
	Category       string          `json:"category"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount"`
	ActualAmount   decimal.Decimal `json:"actualAmount"`
}

// Validate rejects negative amounts.
func (b BudgetLineItem) Validate() error {
	if b.BudgetedAmount.IsNegative() || b.ActualAmount.IsNegative() {
		return fmt.Errorf("budget line item %s has a negative amount: %w", b.ID, apperrors.ErrValidation)
	}
	return nil
}

// BudgetVariance is the derived budgeted-vs-actual comparison of one line item.
type BudgetVariance struct {
	LineItemID         string          `json:"lineItemId"`
	ProjectID          string          `json:"projectId"`
	Category           string          `json:"category"`
	BudgetedAmount     decimal.Decimal `json:"budgetedAmount"`
	ActualAmount       decimal.Decimal `json:"actualAmount"`
	Variance           decimal.Decimal `json:"variance"`           // budgeted - actual
	VariancePercentage decimal.Decimal `json:"variancePercentage"` // 0 when budgeted is 0
	OverBudget         bool            `json:"overBudget"`
}

// ProjectBudgetRollup sums all line items of a project.
type ProjectBudgetRollup struct {
	ProjectID               string          `json:"projectId"`
	TotalBudgeted           decimal.Decimal `json:"totalBudgeted"`
	TotalActual             decimal.Decimal `json:"totalActual"`
	TotalVariance           decimal.Decimal `json:"totalVariance"`
	TotalVariancePercentage decimal.Decimal `json:"totalVariancePercentage"`
	OverBudget              bool            `json:"overBudget"`
}

// BudgetAlert flags a project whose actual spend exceeds its budget.
type BudgetAlert struct {
	ProjectID           string          `json:"projectId"`
	OverspendAmount     decimal.Decimal `json:"overspendAmount"`
	OverspendPercentage decimal.Decimal `json:"overspendPercentage"`
}

// ProjectBudgetReport is the per-project budget view: every line item plus the rollup.
type ProjectBudgetReport struct {
	ProjectID string              `json:"projectId"`
	LineItems []BudgetVariance    `json:"lineItems"`
	Rollup    ProjectBudgetRollup `json:"rollup"`
	Alert     *BudgetAlert        `json:"alert,omitempty"`
}
