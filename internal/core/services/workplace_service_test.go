package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/SscSPs/contractor_backoffice/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkplaceService_AuthorizeUserAction(t *testing.T) {
	active := &domain.Workplace{WorkplaceID: "wp-1", Name: "Acme Builders", IsActive: true}
	dbErr := errors.New("connection reset")

	tests := []struct {
		name       string
		workplace  *domain.Workplace
		findErr    error
		membership *domain.UserWorkplace
		roleErr    error
		required   domain.UserWorkplaceRole
		wantErr    error
	}{
		{
			name:       "read only member may view",
			workplace:  active,
			membership: &domain.UserWorkplace{UserID: "u1", WorkplaceID: "wp-1", Role: domain.RoleReadOnly},
			required:   domain.RoleReadOnly,
		},
		{
			name:       "read only member may not act as admin",
			workplace:  active,
			membership: &domain.UserWorkplace{UserID: "u1", WorkplaceID: "wp-1", Role: domain.RoleReadOnly},
			required:   domain.RoleAdmin,
			wantErr:    apperrors.ErrForbidden,
		},
		{
			name:       "removed member",
			workplace:  active,
			membership: &domain.UserWorkplace{UserID: "u1", WorkplaceID: "wp-1", Role: domain.RoleRemoved},
			required:   domain.RoleReadOnly,
			wantErr:    apperrors.ErrForbidden,
		},
		{
			name:      "not a member",
			workplace: active,
			roleErr:   apperrors.ErrNotFound,
			required:  domain.RoleReadOnly,
			wantErr:   apperrors.ErrForbidden,
		},
		{
			name:     "unknown workplace",
			findErr:  apperrors.ErrNotFound,
			required: domain.RoleReadOnly,
			wantErr:  apperrors.ErrNotFound,
		},
		{
			name:      "inactive workplace",
			workplace: &domain.Workplace{WorkplaceID: "wp-1", IsActive: false},
			required:  domain.RoleReadOnly,
			wantErr:   apperrors.ErrForbidden,
		},
		{
			name:      "repository failure",
			workplace: active,
			roleErr:   dbErr,
			required:  domain.RoleReadOnly,
			wantErr:   dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWorkplaceRepository)
			ctx := context.Background()
			repo.On("FindWorkplaceByID", ctx, "wp-1").Return(tt.workplace, tt.findErr).Once()
			if tt.workplace != nil && tt.workplace.IsActive {
				repo.On("FindUserWorkplaceRole", ctx, "u1", "wp-1").Return(tt.membership, tt.roleErr).Once()
			}

			err := services.NewWorkplaceService(repo).AuthorizeUserAction(ctx, "u1", "wp-1", tt.required)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			if tt.workplace == nil || !tt.workplace.IsActive {
				repo.AssertNotCalled(t, "FindUserWorkplaceRole", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
