package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestMoneyRecord_Validate(t *testing.T) {
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  domain.MoneyRecord
		wantErr bool
	}{
		{
			name:   "valid expense",
			record: domain.MoneyRecord{ID: "e1", Kind: domain.KindExpense, Amount: decimal.NewFromInt(10), Date: date},
		},
		{
			name:   "zero amount payment is allowed",
			record: domain.MoneyRecord{ID: "p1", Kind: domain.KindPayment, Amount: decimal.Zero, Date: date},
		},
		{
			name:    "negative amount",
			record:  domain.MoneyRecord{ID: "e2", Kind: domain.KindExpense, Amount: decimal.NewFromInt(-1), Date: date},
			wantErr: true,
		},
		{
			name:    "missing kind",
			record:  domain.MoneyRecord{ID: "e3", Amount: decimal.NewFromInt(1), Date: date},
			wantErr: true,
		},
		{
			name:    "missing date",
			record:  domain.MoneyRecord{ID: "e4", Kind: domain.KindExpense, Amount: decimal.NewFromInt(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecurringExpenseDef_Validate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		def     domain.RecurringExpenseDef
		wantErr bool
	}{
		{"valid open ended", domain.RecurringExpenseDef{ID: "r1", Amount: decimal.NewFromInt(100), Frequency: domain.Monthly, StartDate: &start}, false},
		{"no dates at all", domain.RecurringExpenseDef{ID: "r2", Amount: decimal.NewFromInt(100), Frequency: domain.Yearly}, false},
		{"negative amount", domain.RecurringExpenseDef{ID: "r3", Amount: decimal.NewFromInt(-100), Frequency: domain.Weekly}, true},
		{"unknown frequency", domain.RecurringExpenseDef{ID: "r4", Amount: decimal.NewFromInt(100), Frequency: "fortnightly"}, true},
		{"ends before start", domain.RecurringExpenseDef{ID: "r5", Amount: decimal.NewFromInt(100), Frequency: domain.Quarterly, StartDate: &start, EndDate: timePtr(start.AddDate(0, 0, -1))}, true},
		{"ends on start day", domain.RecurringExpenseDef{ID: "r6", Amount: decimal.NewFromInt(100), Frequency: domain.Quarterly, StartDate: &start, EndDate: timePtr(start.Add(5 * time.Hour))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceAndPayment_Validate(t *testing.T) {
	assert.NoError(t, domain.Invoice{ID: "i", TotalAmount: decimal.Zero}.Validate())
	assert.ErrorIs(t, domain.Invoice{ID: "i", TotalAmount: decimal.NewFromInt(-5)}.Validate(), apperrors.ErrValidation)

	assert.NoError(t, domain.InvoicePayment{ID: "p", Amount: decimal.RequireFromString("0.01")}.Validate())
	assert.ErrorIs(t, domain.InvoicePayment{ID: "p", Amount: decimal.Zero}.Validate(), apperrors.ErrValidation)
}

func TestBudgetLineItem_Validate(t *testing.T) {
	assert.NoError(t, domain.BudgetLineItem{ID: "b", BudgetedAmount: decimal.Zero, ActualAmount: decimal.NewFromInt(3)}.Validate())
	assert.ErrorIs(t, domain.BudgetLineItem{ID: "b", BudgetedAmount: decimal.NewFromInt(1), ActualAmount: decimal.NewFromInt(-3)}.Validate(), apperrors.ErrValidation)
}

func TestPeriodBucket_Contains(t *testing.T) {
	b := domain.PeriodBucket{
		Start: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, b.Contains(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)))
	assert.True(t, b.Contains(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, b.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, b.Contains(time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)))
}

func TestUserWorkplaceRole_Grants(t *testing.T) {
	tests := []struct {
		role     domain.UserWorkplaceRole
		required domain.UserWorkplaceRole
		want     bool
	}{
		{domain.RoleAdmin, domain.RoleReadOnly, true},
		{domain.RoleMember, domain.RoleReadOnly, true},
		{domain.RoleReadOnly, domain.RoleReadOnly, true},
		{domain.RoleReadOnly, domain.RoleMember, false},
		{domain.RoleMember, domain.RoleAdmin, false},
		{domain.RoleRemoved, domain.RoleReadOnly, false},
		{"", domain.RoleReadOnly, false},
		{domain.RoleAdmin, domain.RoleRemoved, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"->"+string(tt.required), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Grants(tt.required))
		})
	}
}
