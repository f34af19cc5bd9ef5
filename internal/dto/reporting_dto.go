package dto

import (
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/SscSPs/contractor_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// PeriodSummaryResponse is one bucket of the report's period series.
type PeriodSummaryResponse struct {
	Label    string          `json:"label"`
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expense  decimal.Decimal `json:"expense"`
	Profit   decimal.Decimal `json:"profit"`
	IsFuture bool            `json:"isFuture"`
}

// FinancialReportResponse represents the financial report response
type FinancialReportResponse struct {
	Timeframe    string                        `json:"timeframe"`
	GeneratedAt  time.Time                     `json:"generatedAt"`
	Periods      []PeriodSummaryResponse       `json:"periods"`
	ByProject    []domain.ProjectProfitability `json:"byProject"`
	ByCategory   []domain.CategoryBreakdown    `json:"byCategory"`
	BudgetAlerts []domain.BudgetAlert          `json:"budgetAlerts"`
	Invoices     []InvoiceSummaryResponse      `json:"invoices"`
	Totals       domain.ReportTotals           `json:"totals"`
}

// ToFinancialReportResponse converts a domain report to its API shape.
func ToFinancialReportResponse(r *domain.FinancialReport) FinancialReportResponse {
	periods := make([]PeriodSummaryResponse, len(r.Periods))
	for i, p := range r.Periods {
		periods[i] = PeriodSummaryResponse{
			Label:    p.Label,
			Start:    p.Start.Format(dateLayout),
			End:      p.End.Format(dateLayout),
			Revenue:  p.Revenue,
			Expense:  p.Expense,
			Profit:   p.Profit,
			IsFuture: p.IsFuture,
		}
	}
	return FinancialReportResponse{
		Timeframe:    string(r.Timeframe),
		GeneratedAt:  r.GeneratedAt,
		Periods:      periods,
		ByProject:    r.ByProject,
		ByCategory:   r.ByCategory,
		BudgetAlerts: r.BudgetAlerts,
		Invoices:     ToInvoiceSummaryResponses(r.Invoices),
		Totals:       r.Totals,
	}
}

// PeriodCSVRow is one line of the period series CSV export.
type PeriodCSVRow struct {
	Period   string `csv:"period"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
	Revenue  string `csv:"revenue"`
	Expense  string `csv:"expense"`
	Profit   string `csv:"profit"`
	Forecast bool   `csv:"forecast"`
}

// ToPeriodCSVRows flattens the report's period series with amounts at two decimal places.
func ToPeriodCSVRows(r *domain.FinancialReport) []PeriodCSVRow {
	rows := make([]PeriodCSVRow, len(r.Periods))
	for i, p := range r.Periods {
		rows[i] = PeriodCSVRow{
			Period:   p.Label,
			Start:    p.Start.Format(dateLayout),
			End:      p.End.Format(dateLayout),
			Revenue:  utils.FormatMoney(p.Revenue),
			Expense:  utils.FormatMoney(p.Expense),
			Profit:   utils.FormatMoney(p.Profit),
			Forecast: p.IsFuture,
		}
	}
	return rows
}
