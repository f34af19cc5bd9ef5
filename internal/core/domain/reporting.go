package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSnapshot is a consistent read of every collection a report needs.
type LedgerSnapshot struct {
	WorkplaceID       string                `json:"workplaceID"`
	Records           []MoneyRecord         `json:"records"`
	RecurringExpenses []RecurringExpenseDef `json:"recurringExpenses"`
	BudgetItems       []BudgetLineItem      `json:"budgetItems"`
	Invoices          []Invoice             `json:"invoices"`
	InvoicePayments   []InvoicePayment      `json:"invoicePayments"`
	Projects          []Project             `json:"projects"`
}

// PeriodSummary is one point of the revenue/expense trend.
type PeriodSummary struct {
	Label    string          `json:"label"`
	Start    time.Time       `json:"start"`
	End      time.Time       `json:"end"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expense  decimal.Decimal `json:"expense"`
	Profit   decimal.Decimal `json:"profit"`
	IsFuture bool            `json:"isFuture"`
}

// ProjectProfitability is the revenue/expense rollup of one project.
type ProjectProfitability struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
	Margin  decimal.Decimal `json:"margin"` // percent; 0 when revenue is 0
}

// CategoryBreakdown is the expense total of one category.
type CategoryBreakdown struct {
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	Count             int             `json:"count"`
	PercentageOfTotal decimal.Decimal `json:"percentageOfTotal"`
}

// ReportTotals summarises the whole report window.
type ReportTotals struct {
	Revenue            decimal.Decimal `json:"revenue"`
	Expense            decimal.Decimal `json:"expense"`
	Profit             decimal.Decimal `json:"profit"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	OverdueInvoices    int             `json:"overdueInvoices"`
}

// FinancialReport is the assembled dashboard/export structure.
type FinancialReport struct {
	Timeframe    TimeframeMode          `json:"timeframe"`
	GeneratedAt  time.Time              `json:"generatedAt"`
	Periods      []PeriodSummary        `json:"periods"`
	ByProject    []ProjectProfitability `json:"byProject"`
	ByCategory   []CategoryBreakdown    `json:"byCategory"`
	BudgetAlerts []BudgetAlert          `json:"budgetAlerts"`
	Invoices     []InvoiceSummary       `json:"invoices"`
	Totals       ReportTotals           `json:"totals"`
}
