package domain

import "time"

// TimeframeMode selects the set of period buckets a report covers.
type TimeframeMode string

const (
	Trailing6Months   TimeframeMode = "6m"
	Trailing12Months  TimeframeMode = "12m"
	Trailing24Months  TimeframeMode = "24m"
	Trailing4Quarters TimeframeMode = "4q"
	Forecast12Months  TimeframeMode = "forecast"
)

// PeriodBucket is a calendar-aligned month or quarter. Start and End are calendar days (inclusive).
type PeriodBucket struct {
	Label    string    `json:"label"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	IsFuture bool      `json:"isFuture"`
}

// Contains reports whether t falls on a calendar day inside the bucket.
func (b PeriodBucket) Contains(t time.Time) bool {
	day := CalendarDay(t)
	return !day.Before(b.Start) && !day.After(b.End)
}
