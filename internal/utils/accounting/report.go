package accounting

import (
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateSnapshot fails fast on the first record the engine cannot accept.
func ValidateSnapshot(snap domain.LedgerSnapshot) error {
	for _, rec := range snap.Records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}
	for _, def := range snap.RecurringExpenses {
		if err := def.Validate(); err != nil {
			return err
		}
	}
	for _, item := range snap.BudgetItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	known := make(map[string]struct{}, len(snap.Invoices))
	for _, inv := range snap.Invoices {
		if err := inv.Validate(); err != nil {
			return err
		}
		known[inv.ID] = struct{}{}
	}
	// Payments for unknown invoices are never applied, so they cannot fail the report.
	for _, p := range snap.InvoicePayments {
		if _, ok := known[p.InvoiceID]; !ok {
			continue
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BuildReport assembles the period series, project and category rollups, budget alerts and
// invoice balances for the timeframe anchored at now.
func BuildReport(snap domain.LedgerSnapshot, mode domain.TimeframeMode, now time.Time) (*domain.FinancialReport, error) {
	if err := ValidateSnapshot(snap); err != nil {
		return nil, err
	}

	buckets, err := BuildPeriods(mode, now, now)
	if err != nil {
		return nil, err
	}

	revenue, err := AggregateByPeriod(snap.Records, buckets, domain.KindPayment)
	if err != nil {
		return nil, err
	}
	expenses, err := AggregateByPeriod(snap.Records, buckets, domain.KindExpense)
	if err != nil {
		return nil, err
	}
	recurring, err := AmortizeAcross(snap.RecurringExpenses, buckets, now)
	if err != nil {
		return nil, err
	}

	totals := domain.ReportTotals{
		Revenue:            decimal.Zero,
		Expense:            decimal.Zero,
		Profit:             decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}
	periods := make([]domain.PeriodSummary, len(buckets))
	for i, b := range buckets {
		expense := expenses[i].Add(recurring[i])
		periods[i] = domain.PeriodSummary{
			Label:    b.Label,
			Start:    b.Start,
			End:      b.End,
			Revenue:  revenue[i],
			Expense:  expense,
			Profit:   revenue[i].Sub(expense),
			IsFuture: b.IsFuture,
		}
		totals.Revenue = totals.Revenue.Add(revenue[i])
		totals.Expense = totals.Expense.Add(expense)
	}
	totals.Profit = totals.Revenue.Sub(totals.Expense)

	windowed := FilterWithinWindow(snap.Records, buckets)
	byProject, err := AggregateByProject(windowed, snap.Projects)
	if err != nil {
		return nil, err
	}
	byCategory, err := AggregateByCategory(windowed)
	if err != nil {
		return nil, err
	}

	rollups, err := ProjectRollups(snap.BudgetItems)
	if err != nil {
		return nil, err
	}

	invoices, err := SummarizeInvoices(snap.Invoices, snap.InvoicePayments, now)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.Balance.IsPositive() && inv.Status != domain.InvoiceDraft {
			totals.OutstandingBalance = totals.OutstandingBalance.Add(inv.Balance)
		}
		if inv.Status == domain.InvoiceOverdue {
			totals.OverdueInvoices++
		}
	}

	return &domain.FinancialReport{
		Timeframe:    mode,
		GeneratedAt:  now,
		Periods:      periods,
		ByProject:    byProject,
		ByCategory:   byCategory,
		BudgetAlerts: BudgetAlerts(rollups),
		Invoices:     invoices,
		Totals:       totals,
	}, nil
}
