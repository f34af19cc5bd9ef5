package services

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// FinancialReport builds the period series, project and category rollups, budget alerts
	// and invoice balances of a workplace for the given timeframe.
	FinancialReport(ctx context.Context, workplaceID string, mode domain.TimeframeMode, userID string) (*domain.FinancialReport, error)
}
