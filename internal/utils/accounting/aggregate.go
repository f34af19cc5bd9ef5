package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel names expenses recorded without a category.
const UncategorizedLabel = "Uncategorized"

// AggregateByPeriod sums records of kind into the bucket containing their date.
// Records outside every bucket are outside the requested window and are dropped.
func AggregateByPeriod(records []domain.MoneyRecord, buckets []domain.PeriodBucket, kind domain.RecordKind) ([]decimal.Decimal, error) {
	totals := zeroes(len(buckets))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if rec.Kind != kind {
			continue
		}
		if i := bucketIndex(buckets, rec.Date); i >= 0 {
			totals[i] = totals[i].Add(rec.Amount)
		}
	}
	return totals, nil
}

// SumWithinWindow sums records of kind dated between the first bucket start and the last bucket end.
func SumWithinWindow(records []domain.MoneyRecord, buckets []domain.PeriodBucket, kind domain.RecordKind) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, rec := range FilterWithinWindow(records, buckets) {
		if err := rec.Validate(); err != nil {
			return decimal.Zero, err
		}
		if rec.Kind == kind {
			sum = sum.Add(rec.Amount)
		}
	}
	return sum, nil
}

// FilterWithinWindow keeps the records dated inside the span covered by buckets.
func FilterWithinWindow(records []domain.MoneyRecord, buckets []domain.PeriodBucket) []domain.MoneyRecord {
	from, to, ok := WindowOf(buckets)
	if !ok {
		return []domain.MoneyRecord{}
	}
	out := make([]domain.MoneyRecord, 0, len(records))
	for _, rec := range records {
		if withinDays(rec.Date, from, to) {
			out = append(out, rec)
		}
	}
	return out
}

// AggregateByProject rolls payments (revenue) and expenses up per project.
// Projects with neither revenue nor expense are left out; records pointing at unknown projects are ignored.
func AggregateByProject(records []domain.MoneyRecord, projects []domain.Project) ([]domain.ProjectProfitability, error) {
	type sums struct {
		revenue decimal.Decimal
		expense decimal.Decimal
	}
	byID := make(map[string]*sums, len(projects))
	for _, p := range projects {
		byID[p.ID] = &sums{revenue: decimal.Zero, expense: decimal.Zero}
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		s, ok := byID[rec.ProjectID]
		if !ok {
			continue
		}
		switch rec.Kind {
		case domain.KindPayment:
			s.revenue = s.revenue.Add(rec.Amount)
		case domain.KindExpense:
			s.expense = s.expense.Add(rec.Amount)
		}
	}

	result := make([]domain.ProjectProfitability, 0, len(projects))
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		s := byID[p.ID]
		if s.revenue.IsZero() && s.expense.IsZero() {
			continue
		}
		profit := s.revenue.Sub(s.expense)
		result = append(result, domain.ProjectProfitability{
			ID:      p.ID,
			Name:    p.Name,
			Revenue: s.revenue,
			Expense: s.expense,
			Profit:  profit,
			Margin:  percentOf(profit, s.revenue),
		})
	}
	return result, nil
}

// AggregateByCategory totals expenses per category. The percentage denominator is the total of
// every expense passed in, so callers pre-filter when they want a period-scoped share.
func AggregateByCategory(records []domain.MoneyRecord) ([]domain.CategoryBreakdown, error) {
	total := decimal.Zero
	index := make(map[string]int)
	var rows []domain.CategoryBreakdown

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if rec.Kind != domain.KindExpense {
			continue
		}
		category := rec.Category
		if category == "" {
			category = UncategorizedLabel
		}
		i, ok := index[category]
		if !ok {
			i = len(rows)
			index[category] = i
			rows = append(rows, domain.CategoryBreakdown{Category: category, Amount: decimal.Zero})
		}
		rows[i].Amount = rows[i].Amount.Add(rec.Amount)
		rows[i].Count++
		total = total.Add(rec.Amount)
	}

	for i := range rows {
		rows[i].PercentageOfTotal = percentOf(rows[i].Amount, total)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if cmp := rows[i].Amount.Cmp(rows[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return rows[i].Category < rows[j].Category
	})
	if rows == nil {
		rows = []domain.CategoryBreakdown{}
	}
	return rows, nil
}

func withinDays(t, from, to time.Time) bool {
	day := domain.CalendarDay(t)
	return !day.Before(from) && !day.After(to)
}
