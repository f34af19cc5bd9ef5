package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring expense is charged.
type Frequency string

const (
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// RecurringExpenseDef describes a recurring cost such as rent, insurance or a software subscription.
type RecurringExpenseDef struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency Frequency       `json:"frequency"`
	IsActive  bool            `json:"isActive"`
	StartDate *time.Time      `json:"startDate,omitempty"` // nil means "forecast only"
	EndDate   *time.Time      `json:"endDate,omitempty"`   // nil means open ended
	ProjectID string          `json:"projectId"`
}

// Validate checks amount and frequency. Dates are optional.
func (d RecurringExpenseDef) Validate() error {
	if d.Amount.IsNegative() {
		return fmt.Errorf("recurring expense %s has negative amount %s: %w", d.ID, d.Amount.String(), apperrors.ErrValidation)
	}
	switch d.Frequency {
	case Weekly, Monthly, Quarterly, Yearly:
	default:
		return fmt.Errorf("recurring expense %s has unknown frequency %q: %w", d.ID, d.Frequency, apperrors.ErrValidation)
	}
	if d.StartDate != nil && d.EndDate != nil && CalendarDay(*d.EndDate).Before(CalendarDay(*d.StartDate)) {
		return fmt.Errorf("recurring expense %s ends before it starts: %w", d.ID, apperrors.ErrValidation)
	}
	return nil
}
