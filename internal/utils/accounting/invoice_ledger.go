package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeriveInvoiceStatus computes an invoice's status from its balance and due date.
// Draft and sent invoices without any payment keep the status the editing flow gave them,
// except that a sent invoice past its due date becomes overdue.
func DeriveInvoiceStatus(inv domain.Invoice, balance decimal.Decimal, now time.Time) domain.InvoiceStatus {
	switch {
	case !balance.IsPositive():
		return domain.InvoicePaid
	case balance.LessThan(inv.TotalAmount):
		return domain.InvoicePartial
	}

	if inv.Status == domain.InvoiceDraft {
		return domain.InvoiceDraft
	}
	if pastDue(inv, now) {
		return domain.InvoiceOverdue
	}
	if inv.Status == domain.InvoiceSent {
		return domain.InvoiceSent
	}
	return domain.InvoiceOutstanding
}

// InvoiceBalance applies every payment that belongs to inv and derives the resulting summary.
// Payments for other invoices are ignored.
func InvoiceBalance(inv domain.Invoice, payments []domain.InvoicePayment, now time.Time) (domain.InvoiceSummary, error) {
	if err := inv.Validate(); err != nil {
		return domain.InvoiceSummary{}, err
	}

	paid := decimal.Zero
	count := 0
	for _, p := range payments {
		if p.InvoiceID != inv.ID {
			continue
		}
		if err := p.Validate(); err != nil {
			return domain.InvoiceSummary{}, err
		}
		paid = paid.Add(p.Amount)
		count++
	}

	balance := inv.TotalAmount.Sub(paid)
	summary := domain.InvoiceSummary{
		InvoiceID:      inv.ID,
		Number:         inv.Number,
		ProjectID:      inv.ProjectID,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     paid,
		Balance:        balance,
		Status:         DeriveInvoiceStatus(inv, balance, now),
		DueDate:        inv.DueDate,
		PaymentCount:   count,
		OverpaidAmount: decimal.Zero,
	}
	if balance.IsNegative() {
		summary.Overpaid = true
		summary.OverpaidAmount = balance.Neg()
	}
	return summary, nil
}

// ApplyPayment appends payment to the invoice's prior payments and returns the new balance and status.
// Nothing is mutated; the result depends only on the invoice, the accumulated payments and now.
func ApplyPayment(inv domain.Invoice, prior []domain.InvoicePayment, payment domain.InvoicePayment, now time.Time) (domain.PaymentApplication, error) {
	if err := payment.Validate(); err != nil {
		return domain.PaymentApplication{}, err
	}
	if payment.InvoiceID != inv.ID {
		return domain.PaymentApplication{}, fmt.Errorf("payment %s references invoice %s, not %s: %w",
			payment.ID, payment.InvoiceID, inv.ID, apperrors.ErrValidation)
	}

	accumulated := make([]domain.InvoicePayment, 0, len(prior)+1)
	accumulated = append(accumulated, prior...)
	accumulated = append(accumulated, payment)

	summary, err := InvoiceBalance(inv, accumulated, now)
	if err != nil {
		return domain.PaymentApplication{}, err
	}
	return domain.PaymentApplication{
		InvoiceID:  inv.ID,
		NewBalance: summary.Balance,
		NewStatus:  summary.Status,
		Overpaid:   summary.Overpaid,
	}, nil
}

// SummarizeInvoices derives a summary for every invoice, keeping input order.
func SummarizeInvoices(invoices []domain.Invoice, payments []domain.InvoicePayment, now time.Time) ([]domain.InvoiceSummary, error) {
	byInvoice := make(map[string][]domain.InvoicePayment, len(invoices))
	for _, p := range payments {
		byInvoice[p.InvoiceID] = append(byInvoice[p.InvoiceID], p)
	}

	summaries := make([]domain.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		summary, err := InvoiceBalance(inv, byInvoice[inv.ID], now)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func pastDue(inv domain.Invoice, now time.Time) bool {
	if inv.DueDate == nil {
		return false
	}
	return domain.CalendarDay(now).After(domain.CalendarDay(*inv.DueDate))
}
