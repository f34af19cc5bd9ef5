package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RecordKind tags a money movement as an expense or a client payment.
// It is set where records are fetched so the engine never infers meaning from collection membership.
type RecordKind string

const (
	KindExpense RecordKind = "expense"
	KindPayment RecordKind = "payment"
)

// MoneyRecord is a dated, one-off money movement (an expense or a client payment).
type MoneyRecord struct {
	ID        string          `json:"id"`
	Kind      RecordKind      `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`   // Non-negative; precise decimal type
	Date      time.Time       `json:"date"`     // Calendar date; time of day is ignored
	Category  string          `json:"category"` // Optional
	ProjectID string          `json:"projectId"`
}

// Validate rejects records the engine cannot aggregate.
func (r MoneyRecord) Validate() error {
	switch r.Kind {
	case KindExpense, KindPayment:
	default:
		return fmt.Errorf("record %s has unknown kind %q: %w", r.ID, r.Kind, apperrors.ErrValidation)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("record %s has negative amount %s: %w", r.ID, r.Amount.String(), apperrors.ErrValidation)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("record %s has no date: %w", r.ID, apperrors.ErrValidation)
	}
	return nil
}

// CalendarDay truncates t to midnight UTC of the calendar day it falls on in its own location.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
