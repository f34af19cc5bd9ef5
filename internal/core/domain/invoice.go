package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle status of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft       InvoiceStatus = "draft"
	InvoiceSent        InvoiceStatus = "sent"
	InvoiceOutstanding InvoiceStatus = "outstanding"
	InvoicePartial     InvoiceStatus = "partial"
	InvoicePaid        InvoiceStatus = "paid"
	InvoiceOverdue     InvoiceStatus = "overdue"
)

// Invoice is a bill sent to a client for a project.
type Invoice struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	ProjectID   string          `json:"projectId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      InvoiceStatus   `json:"status"` // stored status; draft/sent are set by the editing flow
	DueDate     *time.Time      `json:"dueDate,omitempty"`
}

// Validate rejects negative totals.
func (i Invoice) Validate() error {
	if i.TotalAmount.IsNegative() {
		return fmt.Errorf("invoice %s has negative total %s: %w", i.ID, i.TotalAmount.String(), apperrors.ErrValidation)
	}
	return nil
}

// InvoicePayment is money received against an invoice.
type InvoicePayment struct {
	ID              string          `json:"id"`
	InvoiceID       string          `json:"invoiceId"`
	Amount          decimal.Decimal `json:"amount"` // Strictly positive
	PaymentDate     time.Time       `json:"paymentDate"`
	Method          string          `json:"method"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Validate requires a strictly positive amount.
func (p InvoicePayment) Validate() error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("invoice payment %s must have a positive amount, got %s: %w", p.ID, p.Amount.String(), apperrors.ErrValidation)
	}
	return nil
}

// InvoiceSummary is the derived balance view of an invoice.
type InvoiceSummary struct {
	InvoiceID      string          `json:"invoiceId"`
	Number         string          `json:"number"`
	ProjectID      string          `json:"projectId"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Balance        decimal.Decimal `json:"balance"`
	Status         InvoiceStatus   `json:"status"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	PaymentCount   int             `json:"paymentCount"`
	Overpaid       bool            `json:"overpaid"`
	OverpaidAmount decimal.Decimal `json:"overpaidAmount"`
}

// PaymentApplication is the result of applying one more payment to an invoice.
type PaymentApplication struct {
	InvoiceID  string          `json:"invoiceId"`
	NewBalance decimal.Decimal `json:"newBalance"`
	NewStatus  InvoiceStatus   `json:"newStatus"`
	Overpaid   bool            `json:"overpaid"`
}
