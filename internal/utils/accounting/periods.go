package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
)

// timeframeLayout describes how a TimeframeMode lays out its buckets.
type timeframeLayout struct {
	count      int
	monthsEach int
	forward    bool
	quarterly  bool
}

var timeframeLayouts = map[domain.TimeframeMode]timeframeLayout{
	domain.Trailing6Months:   {count: 6, monthsEach: 1},
	domain.Trailing12Months:  {count: 12, monthsEach: 1},
	domain.Trailing24Months:  {count: 24, monthsEach: 1},
	domain.Trailing4Quarters: {count: 4, monthsEach: 3, quarterly: true},
	domain.Forecast12Months:  {count: 12, monthsEach: 1, forward: true},
}

// ParseTimeframe validates a timeframe selector coming from outside the engine.
func ParseTimeframe(raw string) (domain.TimeframeMode, error) {
	mode := domain.TimeframeMode(raw)
	if _, ok := timeframeLayouts[mode]; !ok {
		return "", fmt.Errorf("unknown timeframe %q: %w", raw, apperrors.ErrValidation)
	}
	return mode, nil
}

// BuildPeriods returns the calendar buckets for mode around anchor, oldest first.
// A bucket is in the future when it starts after the calendar day of now.
func BuildPeriods(mode domain.TimeframeMode, anchor, now time.Time) ([]domain.PeriodBucket, error) {
	layout, ok := timeframeLayouts[mode]
	if !ok {
		return nil, fmt.Errorf("unknown timeframe %q: %w", mode, apperrors.ErrValidation)
	}

	first := monthStart(anchor)
	if layout.quarterly {
		first = quarterStart(anchor)
	}
	if !layout.forward {
		first = first.AddDate(0, -(layout.count-1)*layout.monthsEach, 0)
	}

	today := domain.CalendarDay(now)
	buckets := make([]domain.PeriodBucket, layout.count)
	for i := 0; i < layout.count; i++ {
		start := first.AddDate(0, i*layout.monthsEach, 0)
		end := start.AddDate(0, layout.monthsEach, -1)
		buckets[i] = domain.PeriodBucket{
			Label:    bucketLabel(start, layout.quarterly),
			Start:    start,
			End:      end,
			IsFuture: start.After(today),
		}
	}
	return buckets, nil
}

// WindowOf returns the first start and the last end of buckets.
func WindowOf(buckets []domain.PeriodBucket) (time.Time, time.Time, bool) {
	if len(buckets) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return buckets[0].Start, buckets[len(buckets)-1].End, true
}

// bucketIndex finds the bucket containing t. Buckets are ordered and contiguous.
func bucketIndex(buckets []domain.PeriodBucket, t time.Time) int {
	for i, b := range buckets {
		if b.Contains(t) {
			return i
		}
	}
	return -1
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func quarterStart(t time.Time) time.Time {
	firstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
}

func bucketLabel(start time.Time, quarter bool) string {
	if quarter {
		return fmt.Sprintf("Q%d %d", (int(start.Month())-1)/3+1, start.Year())
	}
	return start.Format("Jan 2006")
}
