package handlers_test

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) FinancialReport(ctx context.Context, workplaceID string, mode domain.TimeframeMode, userID string) (*domain.FinancialReport, error) {
	args := m.Called(ctx, workplaceID, mode, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) ListInvoiceSummaries(ctx context.Context, workplaceID, userID string, params portssvc.ListInvoiceSummariesParams) (*portssvc.ListInvoiceSummariesResult, error) {
	args := m.Called(ctx, workplaceID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ListInvoiceSummariesResult), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceSummary(ctx context.Context, workplaceID, invoiceID, userID string) (*domain.InvoiceSummary, error) {
	args := m.Called(ctx, workplaceID, invoiceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) PreviewPayment(ctx context.Context, workplaceID, invoiceID string, payment domain.InvoicePayment, userID string) (*domain.PaymentApplication, error) {
	args := m.Called(ctx, workplaceID, invoiceID, payment, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentApplication), args.Error(1)
}

var _ portssvc.InvoiceService = (*MockInvoiceService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ProjectBudget(ctx context.Context, workplaceID, projectID, userID string) (*domain.ProjectBudgetReport, error) {
	args := m.Called(ctx, workplaceID, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectBudgetReport), args.Error(1)
}

var _ portssvc.BudgetService = (*MockBudgetService)(nil)
