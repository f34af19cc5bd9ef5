package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/SscSPs/contractor_backoffice/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerSnapshotReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.LedgerSnapshotReader, options ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService: newBaseService(options...),
		ledgerRepo:  repo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// FinancialReport loads the workplace snapshot once and runs the whole engine against it.
func (s *reportingService) FinancialReport(ctx context.Context, workplaceID string, mode domain.TimeframeMode, userID string) (*domain.FinancialReport, error) {
	if _, err := accounting.ParseTimeframe(string(mode)); err != nil {
		return nil, err
	}
	snap, err := s.authorizedSnapshot(ctx, s.ledgerRepo, workplaceID, userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	report, err := accounting.BuildReport(*snap, mode, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build financial report",
			slog.String("workplace_id", workplaceID),
			slog.String("timeframe", string(mode)))
		return nil, fmt.Errorf("failed to build financial report: %w", invalidStoredData(err))
	}

	s.LogInfo(ctx, "Financial report generated successfully",
		slog.String("workplace_id", workplaceID),
		slog.String("timeframe", string(mode)),
		slog.String("now", now.Format(time.RFC3339)),
		slog.Int("period_count", len(report.Periods)),
		slog.Int("budget_alerts", len(report.BudgetAlerts)))
	return report, nil
}
