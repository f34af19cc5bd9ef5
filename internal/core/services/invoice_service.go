package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/SscSPs/contractor_backoffice/internal/utils"
	"github.com/SscSPs/contractor_backoffice/internal/utils/accounting"
	"github.com/SscSPs/contractor_backoffice/internal/utils/pagination"
)

const (
	defaultInvoicePageSize = 20
	maxInvoicePageSize     = 100
)

type invoiceService struct {
	BaseService
	ledgerRepo portsrepo.LedgerSnapshotReader
}

// NewInvoiceService creates the invoice balance service.
func NewInvoiceService(repo portsrepo.LedgerSnapshotReader, options ...ServiceOption) portssvc.InvoiceService {
	return &invoiceService{
		BaseService: newBaseService(options...),
		ledgerRepo:  repo,
	}
}

var _ portssvc.InvoiceService = (*invoiceService)(nil)

// ListInvoiceSummaries pages through invoices in natural invoice-number order, then id.
func (s *invoiceService) ListInvoiceSummaries(ctx context.Context, workplaceID, userID string, params portssvc.ListInvoiceSummariesParams) (*portssvc.ListInvoiceSummariesResult, error) {
	snap, err := s.authorizedSnapshot(ctx, s.ledgerRepo, workplaceID, userID)
	if err != nil {
		return nil, err
	}

	summaries, err := accounting.SummarizeInvoices(snap.Invoices, snap.InvoicePayments, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize invoices", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to summarize invoices: %w", invalidStoredData(err))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		ki, kj := utils.NaturalSortKey(summaries[i].Number), utils.NaturalSortKey(summaries[j].Number)
		if ki != kj {
			return ki < kj
		}
		return summaries[i].InvoiceID < summaries[j].InvoiceID
	})

	limit := params.Limit
	if limit <= 0 {
		limit = defaultInvoicePageSize
	}
	limit = min(limit, maxInvoicePageSize)

	page, next, err := pagination.Page(summaries, limit, params.NextToken, func(sum domain.InvoiceSummary) []string {
		return []string{utils.NaturalSortKey(sum.Number), sum.InvoiceID}
	})
	if err != nil {
		s.LogError(ctx, err, "Invalid invoice page token", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice summaries listed",
		slog.String("workplace_id", workplaceID),
		slog.Int("count", len(page)),
		slog.Bool("has_more", next != nil))
	return &portssvc.ListInvoiceSummariesResult{Invoices: page, NextToken: next}, nil
}

func (s *invoiceService) GetInvoiceSummary(ctx context.Context, workplaceID, invoiceID, userID string) (*domain.InvoiceSummary, error) {
	snap, err := s.authorizedSnapshot(ctx, s.ledgerRepo, workplaceID, userID)
	if err != nil {
		return nil, err
	}
	inv, err := findInvoice(snap, invoiceID)
	if err != nil {
		s.LogDebug(ctx, "Invoice not found", slog.String("workplace_id", workplaceID), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	summary, err := accounting.InvoiceBalance(*inv, snap.InvoicePayments, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute invoice balance", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to compute invoice balance: %w", invalidStoredData(err))
	}
	return &summary, nil
}

func (s *invoiceService) PreviewPayment(ctx context.Context, workplaceID, invoiceID string, payment domain.InvoicePayment, userID string) (*domain.PaymentApplication, error) {
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.authorizedSnapshot(ctx, s.ledgerRepo, workplaceID, userID)
	if err != nil {
		return nil, err
	}
	inv, err := findInvoice(snap, invoiceID)
	if err != nil {
		return nil, err
	}

	payment.InvoiceID = inv.ID
	prior := make([]domain.InvoicePayment, 0)
	for _, p := range snap.InvoicePayments {
		if p.InvoiceID == inv.ID {
			prior = append(prior, p)
		}
	}

	application, err := accounting.ApplyPayment(*inv, prior, payment, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to preview invoice payment",
			slog.String("invoice_id", invoiceID),
			slog.String("amount", payment.Amount.String()))
		return nil, invalidStoredData(err)
	}

	s.LogInfo(ctx, "Invoice payment previewed",
		slog.String("invoice_id", invoiceID),
		slog.String("new_status", string(application.NewStatus)),
		slog.Bool("overpaid", application.Overpaid))
	return &application, nil
}

func findInvoice(snap *domain.LedgerSnapshot, invoiceID string) (*domain.Invoice, error) {
	for i := range snap.Invoices {
		if snap.Invoices[i].ID == invoiceID {
			return &snap.Invoices[i], nil
		}
	}
	return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
}
