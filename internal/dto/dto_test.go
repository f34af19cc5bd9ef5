package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPeriodCSVRows(t *testing.T) {
	report := &domain.FinancialReport{
		Periods: []domain.PeriodSummary{
			{
				Label:   "May 2025",
				Start:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				End:     time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
				Revenue: decimal.NewFromInt(1000),
				Expense: decimal.RequireFromString("43.3"),
				Profit:  decimal.RequireFromString("956.7"),
			},
			{
				Label:    "Jul 2025",
				Start:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				End:      time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
				Revenue:  decimal.Zero,
				Expense:  decimal.NewFromInt(100),
				Profit:   decimal.NewFromInt(-100),
				IsFuture: true,
			},
		},
	}

	rows := ToPeriodCSVRows(report)
	require.Len(t, rows, 2)
	assert.Equal(t, PeriodCSVRow{
		Period: "May 2025", Start: "2025-05-01", End: "2025-05-31",
		Revenue: "1000.00", Expense: "43.30", Profit: "956.70",
	}, rows[0])
	assert.Equal(t, "-100.00", rows[1].Profit)
	assert.True(t, rows[1].Forecast)
}

func TestToInvoiceSummaryResponse_FormatsDueDate(t *testing.T) {
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	resp := ToInvoiceSummaryResponse(domain.InvoiceSummary{InvoiceID: "i", Status: domain.InvoiceOverdue, DueDate: &due})
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, "2025-07-01", *resp.DueDate)
	assert.Equal(t, "overdue", resp.Status)

	assert.Nil(t, ToInvoiceSummaryResponse(domain.InvoiceSummary{InvoiceID: "j"}).DueDate)
	assert.NotNil(t, ToInvoiceSummaryResponses(nil))
}

func TestPreviewPaymentRequest_ToDomain(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC)

	p, err := PreviewPaymentRequest{Amount: decimal.NewFromInt(50), Method: "check"}.ToDomain("inv-1", now)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", p.InvoiceID)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), p.PaymentDate)

	p, err = PreviewPaymentRequest{Amount: decimal.NewFromInt(50), PaymentDate: "2025-06-01"}.ToDomain("inv-1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, p.PaymentDate.Day())

	_, err = PreviewPaymentRequest{Amount: decimal.NewFromInt(50), PaymentDate: "01/06/2025"}.ToDomain("inv-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
