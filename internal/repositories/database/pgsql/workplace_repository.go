package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxWorkplaceRepository reads workplaces and memberships.
type PgxWorkplaceRepository struct {
	BaseRepository
}

func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	query := `
		SELECT workplace_id, name, is_active
		FROM workplaces
		WHERE workplace_id = $1;
	`
	var w domain.Workplace
	err := r.Pool.QueryRow(ctx, query, workplaceID).Scan(&w.WorkplaceID, &w.Name, &w.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("workplace %s: %w", workplaceID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find workplace "+workplaceID, err)
	}
	return &w, nil
}

func (r *PgxWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	query := `
		SELECT user_id, workplace_id, role, joined_at
		FROM user_workplaces
		WHERE user_id = $1 AND workplace_id = $2;
	`
	var uw domain.UserWorkplace
	err := r.Pool.QueryRow(ctx, query, userID, workplaceID).Scan(
		&uw.UserID,
		&uw.WorkplaceID,
		&uw.Role,
		&uw.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s in workplace %s: %w", userID, workplaceID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find user "+userID+" workplace role in "+workplaceID, err)
	}
	return &uw, nil
}
