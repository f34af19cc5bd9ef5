package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceSummaryResponse is the derived balance view of one invoice.
type InvoiceSummaryResponse struct {
	InvoiceID      string          `json:"invoiceId"`
	Number         string          `json:"number"`
	ProjectID      string          `json:"projectId,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	DueDate        *string         `json:"dueDate,omitempty"`
	PaymentCount   int             `json:"paymentCount"`
	Overpaid       bool            `json:"overpaid"`
	OverpaidAmount decimal.Decimal `json:"overpaidAmount"`
}

// ListInvoicesParams are the query parameters of the invoice listing.
type ListInvoicesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListInvoicesResponse is one page of invoice summaries.
type ListInvoicesResponse struct {
	Invoices  []InvoiceSummaryResponse `json:"invoices"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToInvoiceSummaryResponse converts a domain summary to its API shape.
func ToInvoiceSummaryResponse(s domain.InvoiceSummary) InvoiceSummaryResponse {
	resp := InvoiceSummaryResponse{
		InvoiceID:      s.InvoiceID,
		Number:         s.Number,
		ProjectID:      s.ProjectID,
		TotalAmount:    s.TotalAmount,
		PaidAmount:     s.PaidAmount,
		Balance:        s.Balance,
		Status:         string(s.Status),
		PaymentCount:   s.PaymentCount,
		Overpaid:       s.Overpaid,
		OverpaidAmount: s.OverpaidAmount,
	}
	if s.DueDate != nil {
		due := s.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	return resp
}

// ToInvoiceSummaryResponses converts a list, never returning nil.
func ToInvoiceSummaryResponses(summaries []domain.InvoiceSummary) []InvoiceSummaryResponse {
	out := make([]InvoiceSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = ToInvoiceSummaryResponse(s)
	}
	return out
}

// PreviewPaymentRequest describes a payment to try against an invoice without recording it.
type PreviewPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required,decimal_gt0,money_scale"`
	PaymentDate     string          `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Method          string          `json:"method" binding:"required,max=50"`
	ReferenceNumber string          `json:"referenceNumber" binding:"max=100"`
	Notes           string          `json:"notes" binding:"max=500"`
}

// ToDomain builds the payment; a missing payment date defaults to the calendar day of now.
func (r PreviewPaymentRequest) ToDomain(invoiceID string, now time.Time) (domain.InvoicePayment, error) {
	paymentDate := domain.CalendarDay(now)
	if r.PaymentDate != "" {
		parsed, err := time.Parse(dateLayout, r.PaymentDate)
		if err != nil {
			return domain.InvoicePayment{}, fmt.Errorf("invalid paymentDate %q: %w", r.PaymentDate, apperrors.ErrValidation)
		}
		paymentDate = parsed
	}
	return domain.InvoicePayment{
		ID:              "preview",
		InvoiceID:       invoiceID,
		Amount:          r.Amount,
		PaymentDate:     paymentDate,
		Method:          r.Method,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
	}, nil
}

// PaymentApplicationResponse is the outcome of a previewed payment.
type PaymentApplicationResponse struct {
	InvoiceID  string          `json:"invoiceId"`
	NewBalance decimal.Decimal `json:"newBalance"`
	NewStatus  string          `json:"newStatus"`
	Overpaid   bool            `json:"overpaid"`
}

// ToPaymentApplicationResponse converts a domain payment application.
func ToPaymentApplicationResponse(a domain.PaymentApplication) PaymentApplicationResponse {
	return PaymentApplicationResponse{
		InvoiceID:  a.InvoiceID,
		NewBalance: a.NewBalance,
		NewStatus:  string(a.NewStatus),
		Overpaid:   a.Overpaid,
	}
}
