package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/contractor_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_backoffice/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerRepository implements the LedgerSnapshotReader interface
type ledgerRepository struct {
	BaseRepository
	timeout time.Duration
}

func newLedgerRepository(db *pgxpool.Pool, timeout time.Duration) portsrepo.LedgerSnapshotReader {
	return &ledgerRepository{
		BaseRepository: BaseRepository{Pool: db},
		timeout:        timeout,
	}
}

// LoadSnapshot runs every read inside one read-only repeatable-read transaction.
func (r *ledgerRepository) LoadSnapshot(ctx context.Context, workplaceID string) (*domain.LedgerSnapshot, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	snap := &domain.LedgerSnapshot{WorkplaceID: workplaceID}

	if snap.Projects, err = r.projects(ctx, tx, workplaceID); err != nil {
		return nil, err
	}
	expenses, err := r.expenses(ctx, tx, workplaceID)
	if err != nil {
		return nil, err
	}
	payments, err := r.clientPayments(ctx, tx, workplaceID)
	if err != nil {
		return nil, err
	}
	snap.Records = append(expenses, payments...)

	if snap.RecurringExpenses, err = r.recurringExpenses(ctx, tx, workplaceID); err != nil {
		return nil, err
	}
	if snap.BudgetItems, err = r.budgetItems(ctx, tx, workplaceID); err != nil {
		return nil, err
	}
	if snap.Invoices, err = r.invoices(ctx, tx, workplaceID); err != nil {
		return nil, err
	}
	if snap.InvoicePayments, err = r.invoicePayments(ctx, tx, workplaceID); err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *ledgerRepository) projects(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.Project, error) {
	rows, err := tx.Query(ctx, `
		SELECT project_id, name
		FROM projects
		WHERE workplace_id = $1
		ORDER BY created_at, project_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	result := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return result, nil
}

func (r *ledgerRepository) expenses(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.MoneyRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT expense_id, amount, expense_date, COALESCE(category, ''), COALESCE(project_id, '')
		FROM expenses
		WHERE workplace_id = $1
		ORDER BY expense_date, expense_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	result := []domain.MoneyRecord{}
	for rows.Next() {
		rec := domain.MoneyRecord{Kind: domain.KindExpense}
		if err := rows.Scan(&rec.ID, &rec.Amount, &rec.Date, &rec.Category, &rec.ProjectID); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return result, nil
}

func (r *ledgerRepository) clientPayments(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.MoneyRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT payment_id, amount, payment_date, COALESCE(project_id, '')
		FROM client_payments
		WHERE workplace_id = $1
		ORDER BY payment_date, payment_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying client payments: %w", err)
	}
	defer rows.Close()

	result := []domain.MoneyRecord{}
	for rows.Next() {
		rec := domain.MoneyRecord{Kind: domain.KindPayment}
		if err := rows.Scan(&rec.ID, &rec.Amount, &rec.Date, &rec.ProjectID); err != nil {
			return nil, fmt.Errorf("error scanning client payment row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client payment rows: %w", err)
	}
	return result, nil
}

func (r *ledgerRepository) recurringExpenses(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.RecurringExpenseDef, error) {
	rows, err := tx.Query(ctx, `
		SELECT recurring_expense_id, name, amount, frequency, is_active, start_date, end_date, COALESCE(project_id, '')
		FROM recurring_expenses
		WHERE workplace_id = $1
		ORDER BY recurring_expense_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying recurring expenses: %w", err)
	}
	defer rows.Close()

	result := []domain.RecurringExpenseDef{}
	for rows.Next() {
		var def domain.RecurringExpenseDef
		var frequency string
		if err := rows.Scan(&def.ID, &def.Name, &def.Amount, &frequency, &def.IsActive, &def.StartDate, &def.EndDate, &def.ProjectID); err != nil {
			return nil, fmt.Errorf("error scanning recurring expense row: %w", err)
		}
		def.Frequency = domain.Frequency(frequency)
		result = append(result, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring expense rows: %w", err)
	}
	return result, nil
}

func (r *ledgerRepository) budgetItems(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.BudgetLineItem, error) {
	rows, err := tx.Query(ctx, `
		SELECT line_item_id, project_id, category, budgeted_amount, actual_amount
		FROM budget_line_items
		WHERE workplace_id = $1
		ORDER BY project_id, line_item_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying budget line items: %w", err)
	}
	defer rows.Close()

	result := []domain.BudgetLineItem{}
	for rows.Next() {
		var item domain.BudgetLineItem
		if err := rows.Scan(&item.ID, &item.ProjectID, &item.Category, &item.BudgetedAmount, &item.ActualAmount); err != nil {
			return nil, fmt.Errorf("error scanning budget line item row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget line item rows: %w", err)
	}
	return result, nil
}

func (r *ledgerRepository) invoices(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.Invoice, error) {
	rows, err := tx.Query(ctx, `
		SELECT invoice_id, invoice_number, COALESCE(project_id, ''), total_amount, status, due_date
		FROM invoices
		WHERE workplace_id = $1
		ORDER BY invoice_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		var status string
		if err := rows.Scan(&inv.ID, &inv.Number, &inv.ProjectID, &inv.TotalAmount, &status, &inv.DueDate); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		inv.Status = domain.InvoiceStatus(status)
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	// Natural number order ("INV-2" before "INV-10") cannot be expressed in plain ORDER BY.
	sort.SliceStable(result, func(i, j int) bool {
		return utils.NaturalSortKey(result[i].Number) < utils.NaturalSortKey(result[j].Number)
	})
	return result, nil
}

func (r *ledgerRepository) invoicePayments(ctx context.Context, tx pgx.Tx, workplaceID string) ([]domain.InvoicePayment, error) {
	rows, err := tx.Query(ctx, `
		SELECT p.invoice_payment_id, p.invoice_id, p.amount, p.payment_date, p.method,
			COALESCE(p.reference_number, ''), COALESCE(p.notes, '')
		FROM invoice_payments p
		JOIN invoices i ON i.invoice_id = p.invoice_id
		WHERE i.workplace_id = $1
		ORDER BY p.payment_date, p.invoice_payment_id`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("error querying invoice payments: %w", err)
	}
	defer rows.Close()

	result := []domain.InvoicePayment{}
	for rows.Next() {
		var p domain.InvoicePayment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.PaymentDate, &p.Method, &p.ReferenceNumber, &p.Notes); err != nil {
			return nil, fmt.Errorf("error scanning invoice payment row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice payment rows: %w", err)
	}
	return result, nil
}
