package accounting

import (
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fixedNow is mid-June 2025, in the middle of the working day.
var fixedNow = time.Date(2025, time.June, 15, 13, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func expense(id, amount string, date time.Time, category, projectID string) domain.MoneyRecord {
	return domain.MoneyRecord{ID: id, Kind: domain.KindExpense, Amount: dec(amount), Date: date, Category: category, ProjectID: projectID}
}

func payment(id, amount string, date time.Time, projectID string) domain.MoneyRecord {
	return domain.MoneyRecord{ID: id, Kind: domain.KindPayment, Amount: dec(amount), Date: date, ProjectID: projectID}
}

func monthBucket(y int, m time.Month, future bool) domain.PeriodBucket {
	start := day(y, m, 1)
	return domain.PeriodBucket{
		Label:    start.Format("Jan 2006"),
		Start:    start,
		End:      start.AddDate(0, 1, -1),
		IsFuture: future,
	}
}
