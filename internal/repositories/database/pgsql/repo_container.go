package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx-backed repository. snapshotTimeout bounds one snapshot load.
func NewRepositoryProvider(dbPool *pgxpool.Pool, snapshotTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkplaceRepo: newPgxWorkplaceRepository(dbPool),
		LedgerRepo:    newLedgerRepository(dbPool, snapshotTimeout),
	}
}
