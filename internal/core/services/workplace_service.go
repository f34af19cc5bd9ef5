package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
)

type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

// NewWorkplaceService creates the workplace authorizer.
func NewWorkplaceService(repo portsrepo.WorkplaceRepositoryFacade, options ...ServiceOption) portssvc.WorkplaceAuthorizerSvc {
	return &workplaceService{
		BaseService:   newBaseService(options...),
		workplaceRepo: repo,
	}
}

var _ portssvc.WorkplaceAuthorizerSvc = (*workplaceService)(nil)

// AuthorizeUserAction checks if a user has required permissions for a workplace
func (s *workplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Workplace not found", slog.String("workplace_id", workplaceID))
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find workplace", slog.String("workplace_id", workplaceID))
		return err
	}
	if !workplace.IsActive {
		s.LogDebug(ctx, "Workplace is inactive", slog.String("workplace_id", workplaceID))
		return apperrors.ErrForbidden
	}

	membership, err := s.workplaceRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workplace",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user workplace role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if !membership.Role.Grants(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
