package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_backoffice/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_ProjectBudget(t *testing.T) {
	ctx := context.Background()
	ledger := new(MockLedgerSnapshotReader)
	authorizer := new(MockWorkplaceAuthorizer)
	authorizer.On("AuthorizeUserAction", ctx, "u1", "wp-1", domain.RoleReadOnly).Return(nil)
	ledger.On("LoadSnapshot", ctx, "wp-1").Return(sampleSnapshot("wp-1"), nil)

	svc := services.NewBudgetService(ledger, services.WithWorkplaceAuthorizer(authorizer), services.WithClock(fixedClock))

	kitchen, err := svc.ProjectBudget(ctx, "wp-1", "kitchen", "u1")
	require.NoError(t, err)
	require.Len(t, kitchen.LineItems, 2)
	assert.True(t, kitchen.LineItems[0].Variance.Equal(d("-300")))
	assert.True(t, kitchen.LineItems[0].VariancePercentage.Equal(d("-50")))
	assert.True(t, kitchen.LineItems[0].OverBudget)
	assert.True(t, kitchen.Rollup.TotalVariance.Equal(d("-200")))
	require.NotNil(t, kitchen.Alert)
	assert.True(t, kitchen.Alert.OverspendAmount.Equal(d("200")))
	assert.True(t, kitchen.Alert.OverspendPercentage.Equal(d("20")))

	roof, err := svc.ProjectBudget(ctx, "wp-1", "roof", "u1")
	require.NoError(t, err)
	assert.Nil(t, roof.Alert)
	assert.False(t, roof.Rollup.OverBudget)

	_, err = svc.ProjectBudget(ctx, "wp-1", "patio", "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBudgetService_InvalidStoredLineItem(t *testing.T) {
	ctx := context.Background()
	snap := sampleSnapshot("wp-1")
	snap.BudgetItems = append(snap.BudgetItems, domain.BudgetLineItem{ID: "b-bad", ProjectID: "kitchen", Category: "Labor", BudgetedAmount: d("-10"), ActualAmount: d("0")})
	ledger := new(MockLedgerSnapshotReader)
	ledger.On("LoadSnapshot", ctx, "wp-1").Return(snap, nil)

	svc := services.NewBudgetService(ledger, services.WithClock(fixedClock))

	_, err := svc.ProjectBudget(ctx, "wp-1", "kitchen", "u1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStoredData)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewServiceContainer_WiresEveryService(t *testing.T) {
	container := services.NewServiceContainer(portsrepo.RepositoryProvider{
		WorkplaceRepo: new(MockWorkplaceRepository),
		LedgerRepo:    new(MockLedgerSnapshotReader),
	}, nil)
	assert.NotNil(t, container.Workplace)
	assert.NotNil(t, container.Reporting)
	assert.NotNil(t, container.Invoice)
	assert.NotNil(t, container.Budget)
}
