package services

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// WorkplaceAuthorizerSvc defines operations for workplace authorization
type WorkplaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a workplace.
	// Returns apperrors.ErrForbidden when the user is not a member or holds a weaker role.
	AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error
}
