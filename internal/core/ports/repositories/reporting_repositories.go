package repositories

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// LedgerSnapshotReader fetches everything the reporting engine needs for one workplace.
type LedgerSnapshotReader interface {
	// LoadSnapshot reads expenses, client payments, recurring expenses, budget line items,
	// invoices, invoice payments and projects as one consistent point-in-time view.
	// Every returned MoneyRecord carries its Kind.
	LoadSnapshot(ctx context.Context, workplaceID string) (*domain.LedgerSnapshot, error)
}
