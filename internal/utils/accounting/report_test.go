package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() domain.LedgerSnapshot {
	return domain.LedgerSnapshot{
		WorkplaceID: "wp-1",
		Records: []domain.MoneyRecord{
			expense("e1", "100", day(2025, time.April, 10), "Materials", "kitchen"),
			expense("e2", "200", day(2025, time.May, 5), "Labor", "kitchen"),
			expense("e3", "50", day(2025, time.June, 1), "", "roof"),
			payment("p1", "1000", day(2025, time.May, 20), "kitchen"),
			expense("ancient", "10000", day(2023, time.January, 1), "Labor", "kitchen"),
		},
		Projects: []domain.Project{
			{ID: "kitchen", Name: "Kitchen remodel"},
			{ID: "roof", Name: "Roof repair"},
		},
		BudgetItems: []domain.BudgetLineItem{
			lineItem("l1", "kitchen", "1000", "1200"),
			lineItem("l2", "roof", "800", "300"),
		},
		Invoices: []domain.Invoice{
			{ID: "inv-1", Number: "INV-001", ProjectID: "kitchen", TotalAmount: dec("500"), Status: domain.InvoiceOutstanding, DueDate: dayPtr(2025, time.June, 1)},
			{ID: "inv-2", Number: "INV-002", ProjectID: "roof", TotalAmount: dec("250"), Status: domain.InvoiceDraft},
		},
		InvoicePayments: []domain.InvoicePayment{
			invoicePayment("ip-1", "inv-1", "200", day(2025, time.May, 20)),
		},
	}
}

func TestBuildReport_TrailingSixMonths(t *testing.T) {
	report, err := BuildReport(sampleSnapshot(), domain.Trailing6Months, fixedNow)
	require.NoError(t, err)

	require.Len(t, report.Periods, 6)
	assert.Equal(t, domain.Trailing6Months, report.Timeframe)
	assert.Equal(t, fixedNow, report.GeneratedAt)

	wantProfit := map[string]string{
		"Jan 2025": "0",
		"Feb 2025": "0",
		"Mar 2025": "0",
		"Apr 2025": "-100",
		"May 2025": "800",
		"Jun 2025": "-50",
	}
	for _, p := range report.Periods {
		assert.True(t, p.Profit.Equal(dec(wantProfit[p.Label])), "%s: got %s", p.Label, p.Profit)
		assert.True(t, p.Profit.Equal(p.Revenue.Sub(p.Expense)))
		assert.False(t, p.IsFuture)
	}

	assert.True(t, report.Totals.Revenue.Equal(dec("1000")))
	assert.True(t, report.Totals.Expense.Equal(dec("350")))
	assert.True(t, report.Totals.Profit.Equal(dec("650")))

	require.Len(t, report.ByProject, 2)
	assert.Equal(t, "kitchen", report.ByProject[0].ID)
	assert.True(t, report.ByProject[0].Expense.Equal(dec("300")), "old records stay out of the window")
	assert.True(t, report.ByProject[0].Margin.Equal(dec("70")))

	require.Len(t, report.ByCategory, 3)
	assert.Equal(t, "Labor", report.ByCategory[0].Category)
	assert.True(t, report.ByCategory[0].Amount.Equal(dec("200")))

	require.Len(t, report.BudgetAlerts, 1)
	assert.Equal(t, "kitchen", report.BudgetAlerts[0].ProjectID)
	assert.True(t, report.BudgetAlerts[0].OverspendAmount.Equal(dec("200")))

	require.Len(t, report.Invoices, 2)
	assert.Equal(t, domain.InvoicePartial, report.Invoices[0].Status)
	assert.True(t, report.Invoices[0].Balance.Equal(dec("300")))
	assert.Equal(t, domain.InvoiceDraft, report.Invoices[1].Status)
	assert.True(t, report.Totals.OutstandingBalance.Equal(dec("300")), "drafts are not outstanding")
	assert.Equal(t, 0, report.Totals.OverdueInvoices)
}

func TestBuildReport_OverdueInvoicesCounted(t *testing.T) {
	snap := sampleSnapshot()
	snap.InvoicePayments = nil

	report, err := BuildReport(snap, domain.Trailing6Months, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceOverdue, report.Invoices[0].Status)
	assert.Equal(t, 1, report.Totals.OverdueInvoices)
	assert.True(t, report.Totals.OutstandingBalance.Equal(dec("500")))
}

func TestBuildReport_RecurringExpenses(t *testing.T) {
	snap := domain.LedgerSnapshot{
		WorkplaceID: "wp-1",
		RecurringExpenses: []domain.RecurringExpenseDef{
			{ID: "rent", Name: "Yard rent", Amount: dec("1200"), Frequency: domain.Yearly, IsActive: true},
			{ID: "van", Name: "Van lease", Amount: dec("300"), Frequency: domain.Monthly, IsActive: true, StartDate: dayPtr(2025, time.May, 1)},
			{ID: "old", Name: "Cancelled", Amount: dec("999"), Frequency: domain.Monthly, IsActive: false, StartDate: dayPtr(2024, time.January, 1)},
		},
	}

	trailing, err := BuildReport(snap, domain.Trailing6Months, fixedNow)
	require.NoError(t, err)
	for _, p := range trailing.Periods {
		want := "0"
		if p.Start.Month() >= time.May {
			want = "300"
		}
		assert.True(t, p.Expense.Equal(dec(want)), "%s: got %s", p.Label, p.Expense)
	}

	forecast, err := BuildReport(snap, domain.Forecast12Months, fixedNow)
	require.NoError(t, err)
	require.Len(t, forecast.Periods, 12)
	assert.True(t, forecast.Periods[0].Expense.Equal(dec("300")), "current month is not future")
	for _, p := range forecast.Periods[1:] {
		assert.True(t, p.IsFuture)
		assert.True(t, p.Expense.Equal(dec("400")), "%s: got %s", p.Label, p.Expense)
	}
}

func TestBuildReport_QuarterlyTotalsStayExact(t *testing.T) {
	snap := domain.LedgerSnapshot{
		WorkplaceID: "wp-1",
		RecurringExpenses: []domain.RecurringExpenseDef{
			{ID: "insurance", Name: "Insurance", Amount: dec("100"), Frequency: domain.Quarterly, IsActive: true, StartDate: dayPtr(2024, time.January, 1)},
			{ID: "licence", Name: "Licence", Amount: dec("1000"), Frequency: domain.Yearly, IsActive: true, StartDate: dayPtr(2024, time.January, 1)},
		},
	}

	report, err := BuildReport(snap, domain.Trailing4Quarters, fixedNow)
	require.NoError(t, err)
	require.Len(t, report.Periods, 4)
	for _, p := range report.Periods {
		assert.True(t, p.Expense.Equal(dec("350")), "%s: got %s", p.Label, p.Expense)
	}
	assert.True(t, report.Totals.Expense.Equal(dec("1400")), "got %s", report.Totals.Expense)
}

func TestBuildReport_IgnoresInvalidOrphanPayments(t *testing.T) {
	snap := domain.LedgerSnapshot{
		WorkplaceID: "wp-1",
		Invoices:    []domain.Invoice{{ID: "inv-1", Number: "INV-001", TotalAmount: dec("500"), Status: domain.InvoiceSent}},
		InvoicePayments: []domain.InvoicePayment{
			invoicePayment("p-ok", "inv-1", "200", day(2025, time.June, 1)),
			invoicePayment("p-orphan", "inv-gone", "0", day(2025, time.June, 2)),
		},
	}

	report, err := BuildReport(snap, domain.Trailing6Months, fixedNow)
	require.NoError(t, err)
	require.Len(t, report.Invoices, 1)
	assert.True(t, report.Invoices[0].Balance.Equal(dec("300")))

	snap.InvoicePayments = append(snap.InvoicePayments, invoicePayment("p-bad", "inv-1", "-5", day(2025, time.June, 3)))
	_, err = BuildReport(snap, domain.Trailing6Months, fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBuildReport_EmptySnapshot(t *testing.T) {
	report, err := BuildReport(domain.LedgerSnapshot{WorkplaceID: "wp-1"}, domain.Trailing4Quarters, fixedNow)
	require.NoError(t, err)
	require.Len(t, report.Periods, 4)
	assert.NotNil(t, report.ByProject)
	assert.NotNil(t, report.ByCategory)
	assert.NotNil(t, report.BudgetAlerts)
	assert.NotNil(t, report.Invoices)
	assert.True(t, report.Totals.Profit.IsZero())
}

func TestBuildReport_InvalidInput(t *testing.T) {
	snap := sampleSnapshot()
	snap.Records = append(snap.Records, expense("neg", "-1", day(2025, time.May, 1), "", ""))

	report, err := BuildReport(snap, domain.Trailing6Months, fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, report)

	_, err = BuildReport(sampleSnapshot(), "7w", fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
