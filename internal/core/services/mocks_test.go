package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLedgerSnapshotReader is a mock type for the LedgerSnapshotReader interface
type MockLedgerSnapshotReader struct {
	mock.Mock
}

func (m *MockLedgerSnapshotReader) LoadSnapshot(ctx context.Context, workplaceID string) (*domain.LedgerSnapshot, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSnapshot), args.Error(1)
}

var _ portsrepo.LedgerSnapshotReader = (*MockLedgerSnapshotReader)(nil)

// MockWorkplaceRepository is a mock type for the WorkplaceRepositoryFacade interface
type MockWorkplaceRepository struct {
	mock.Mock
}

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}

var _ portsrepo.WorkplaceRepositoryFacade = (*MockWorkplaceRepository)(nil)

// MockWorkplaceAuthorizer is a mock type for the WorkplaceAuthorizerSvc interface
type MockWorkplaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

var fixedNow = time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, day int) *time.Time {
	t := date(y, m, day)
	return &t
}

func sampleSnapshot(workplaceID string) *domain.LedgerSnapshot {
	return &domain.LedgerSnapshot{
		WorkplaceID: workplaceID,
		Records: []domain.MoneyRecord{
			{ID: "e1", Kind: domain.KindExpense, Amount: d("100"), Date: date(2025, time.April, 10), Category: "Materials", ProjectID: "kitchen"},
			{ID: "e2", Kind: domain.KindExpense, Amount: d("200"), Date: date(2025, time.May, 5), Category: "Labor", ProjectID: "kitchen"},
			{ID: "e3", Kind: domain.KindExpense, Amount: d("50"), Date: date(2025, time.June, 1), ProjectID: "roof"},
			{ID: "p1", Kind: domain.KindPayment, Amount: d("1000"), Date: date(2025, time.May, 20), ProjectID: "kitchen"},
		},
		Projects: []domain.Project{
			{ID: "kitchen", Name: "Kitchen remodel"},
			{ID: "roof", Name: "Roof repair"},
		},
		BudgetItems: []domain.BudgetLineItem{
			{ID: "l1", ProjectID: "kitchen", Category: "Materials", BudgetedAmount: d("600"), ActualAmount: d("900")},
			{ID: "l2", ProjectID: "kitchen", Category: "Labor", BudgetedAmount: d("400"), ActualAmount: d("300")},
			{ID: "l3", ProjectID: "roof", Category: "Labor", BudgetedAmount: d("800"), ActualAmount: d("300")},
		},
		Invoices: []domain.Invoice{
			{ID: "inv-b", Number: "INV-002", ProjectID: "roof", TotalAmount: d("250"), Status: domain.InvoiceSent},
			{ID: "inv-a", Number: "INV-001", ProjectID: "kitchen", TotalAmount: d("500"), Status: domain.InvoiceOutstanding, DueDate: datePtr(2025, time.June, 1)},
			{ID: "inv-c", Number: "INV-003", ProjectID: "kitchen", TotalAmount: d("100"), Status: domain.InvoiceOutstanding},
		},
		InvoicePayments: []domain.InvoicePayment{
			{ID: "ip-1", InvoiceID: "inv-a", Amount: d("200"), PaymentDate: date(2025, time.May, 20), Method: "bank_transfer"},
		},
	}
}
