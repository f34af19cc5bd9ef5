package repositories

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)
}

// WorkplaceMembershipReader looks up workplace memberships.
type WorkplaceMembershipReader interface {
	// FindUserWorkplaceRole retrieves the role of a user in a workplace.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error)
}

// WorkplaceRepositoryFacade combines the workplace read interfaces.
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceMembershipReader
}
