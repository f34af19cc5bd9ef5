package services

import (
	"time"

	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// clock may be nil, in which case time.Now is used.
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock func() time.Time) *portssvc.ServiceContainer {
	if clock == nil {
		clock = time.Now
	}

	// Workplace authorization comes first since every other service depends on it
	workplace := NewWorkplaceService(repos.WorkplaceRepo)
	shared := []ServiceOption{
		WithWorkplaceAuthorizer(workplace),
		WithClock(clock),
	}

	return &portssvc.ServiceContainer{
		Workplace: workplace,
		Reporting: NewReportingService(repos.LedgerRepo, shared...),
		Invoice:   NewInvoiceService(repos.LedgerRepo, shared...),
		Budget:    NewBudgetService(repos.LedgerRepo, shared...),
	}
}
