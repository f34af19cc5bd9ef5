package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// weeksPerMonth is the average-weeks-per-month approximation used for weekly costs.
var weeksPerMonth = decimal.RequireFromString("4.33")

// monthlyFactor expresses a frequency's per-month share as mul/div so that multi-month
// buckets multiply before they divide.
type monthlyFactor struct {
	mul decimal.Decimal
	div int64
}

// monthlyFactors is the per-month conversion registry, keyed by frequency.
var monthlyFactors = map[domain.Frequency]monthlyFactor{
	domain.Weekly:    {mul: weeksPerMonth, div: 1},
	domain.Monthly:   {mul: decimal.NewFromInt(1), div: 1},
	domain.Quarterly: {mul: decimal.NewFromInt(1), div: 3},
	domain.Yearly:    {mul: decimal.NewFromInt(1), div: 12},
}

// amountOver returns def's cost over the given number of months.
func amountOver(def domain.RecurringExpenseDef, months int) (decimal.Decimal, error) {
	if err := def.Validate(); err != nil {
		return decimal.Zero, err
	}
	factor, ok := monthlyFactors[def.Frequency]
	if !ok {
		return decimal.Zero, fmt.Errorf("no converter for frequency %q: %w", def.Frequency, apperrors.ErrValidation)
	}
	scaled := def.Amount.Mul(factor.mul).Mul(decimal.NewFromInt(int64(months)))
	if factor.div == 1 {
		return scaled, nil
	}
	return scaled.Div(decimal.NewFromInt(factor.div)), nil
}

// MonthlyEquivalent converts a recurring definition's amount to a per-month amount.
func MonthlyEquivalent(def domain.RecurringExpenseDef) (decimal.Decimal, error) {
	return amountOver(def, 1)
}

// AmortizedContribution is the share of def that lands in bucket.
//
// Inactive definitions contribute nothing. A definition with a start date counts in buckets
// starting on or after it. A definition without a start date only counts in future buckets,
// so today's recurring costs never inflate already-elapsed periods.
func AmortizedContribution(def domain.RecurringExpenseDef, bucket domain.PeriodBucket, now time.Time) (decimal.Decimal, error) {
	if err := def.Validate(); err != nil {
		return decimal.Zero, err
	}
	if !def.IsActive {
		return decimal.Zero, nil
	}

	if def.StartDate == nil {
		if !bucket.IsFuture {
			return decimal.Zero, nil
		}
	} else {
		start := domain.CalendarDay(*def.StartDate)
		if bucket.Start.Before(start) {
			return decimal.Zero, nil
		}
		if bucket.End.Before(start) {
			return decimal.Zero, fmt.Errorf("recurring expense %s starting %s included in bucket %s: %w",
				def.ID, start.Format("2006-01-02"), bucket.Label, apperrors.ErrInvariant)
		}
	}

	if def.EndDate != nil && bucket.Start.After(domain.CalendarDay(*def.EndDate)) {
		return decimal.Zero, nil
	}

	// Quarterly buckets hold three months of a monthly-equivalent cost.
	return amountOver(def, monthsIn(bucket))
}

// AmortizeAcross sums the contributions of every definition per bucket.
func AmortizeAcross(defs []domain.RecurringExpenseDef, buckets []domain.PeriodBucket, now time.Time) ([]decimal.Decimal, error) {
	totals := zeroes(len(buckets))
	for _, def := range defs {
		for i, bucket := range buckets {
			contribution, err := AmortizedContribution(def, bucket, now)
			if err != nil {
				return nil, err
			}
			totals[i] = totals[i].Add(contribution)
		}
	}
	return totals, nil
}

func monthsIn(bucket domain.PeriodBucket) int {
	months := (bucket.End.Year()-bucket.Start.Year())*12 + int(bucket.End.Month()) - int(bucket.Start.Month()) + 1
	if months < 1 {
		return 1
	}
	return months
}

func zeroes(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
