package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
)

// authorizedSnapshot checks read access and loads the workplace's snapshot.
func (s *BaseService) authorizedSnapshot(ctx context.Context, reader portsrepo.LedgerSnapshotReader, workplaceID, userID string) (*domain.LedgerSnapshot, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view workplace finances",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	snap, err := reader.LoadSnapshot(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}
	s.LogDebug(ctx, "Ledger snapshot loaded",
		slog.String("workplace_id", workplaceID),
		slog.Int("records", len(snap.Records)),
		slog.Int("recurring_expenses", len(snap.RecurringExpenses)),
		slog.Int("invoices", len(snap.Invoices)))
	return snap, nil
}

// invalidStoredData turns a validation failure on snapshot records into ErrInvalidStoredData,
// dropping ErrValidation from the chain so it is not mistaken for a bad request.
func invalidStoredData(err error) error {
	if errors.Is(err, apperrors.ErrValidation) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidStoredData, err)
	}
	return err
}
