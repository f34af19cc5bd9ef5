package services

import (
	"context"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// ListInvoiceSummariesParams controls paging through a workplace's invoices.
type ListInvoiceSummariesParams struct {
	Limit     int
	NextToken *string
}

// ListInvoiceSummariesResult is one page of invoice summaries.
type ListInvoiceSummariesResult struct {
	Invoices  []domain.InvoiceSummary
	NextToken *string
}

// InvoiceService exposes derived invoice balances.
type InvoiceService interface {
	ListInvoiceSummaries(ctx context.Context, workplaceID, userID string, params ListInvoiceSummariesParams) (*ListInvoiceSummariesResult, error)
	GetInvoiceSummary(ctx context.Context, workplaceID, invoiceID, userID string) (*domain.InvoiceSummary, error)

	// PreviewPayment shows the balance and status an invoice would have after payment.
	// Nothing is written.
	PreviewPayment(ctx context.Context, workplaceID, invoiceID string, payment domain.InvoicePayment, userID string) (*domain.PaymentApplication, error)
}
