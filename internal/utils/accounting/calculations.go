package accounting

import (
	"fmt"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SignedAmount applies the cash-flow sign to a record.
// PAYMENT -> Positive (+), money in
// EXPENSE -> Negative (-), money out
func SignedAmount(rec domain.MoneyRecord) (decimal.Decimal, error) {
	switch rec.Kind {
	case domain.KindPayment:
		return rec.Amount, nil
	case domain.KindExpense:
		return rec.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown record kind '%s' encountered for record ID %s: %w", rec.Kind, rec.ID, apperrors.ErrValidation)
	}
}

// NetCashFlow sums the signed amounts of records.
func NetCashFlow(records []domain.MoneyRecord) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return decimal.Zero, err
		}
		signed, err := SignedAmount(rec)
		if err != nil {
			return decimal.Zero, fmt.Errorf("error calculating signed amount for record %s: %w", rec.ID, err)
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}

// percentOf returns part/whole*100 rounded to 2 places, or 0 when whole is 0.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}
