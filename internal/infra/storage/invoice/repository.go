package invoice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/pkg/dbmetrics"
	"github.com/boinvit/booking-service/pkg/psqlbuilder"
)

var invoiceColumns = []string{
	"id",
	"invoice_number",
	"business_id",
	"booking_id",
	"client_name",
	"client_email",
	"amount",
	"currency",
	"status",
	"due_date",
	"paid_at",
	"created_at",
	"updated_at",
}

// Repository is the invoices storage layer
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an invoices repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new invoice. The invoice number is assigned inside the
// insert from a database sequence so concurrent creations never collide.
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	numberExpr := squirrel.Expr(
		"'INV-' || TO_CHAR(NOW(), 'YYYYMM') || '-' || LPAD(NEXTVAL('invoice_number_seq')::text, 5, '0')",
	)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"id",
			"invoice_number",
			"business_id",
			"booking_id",
			"client_name",
			"client_email",
			"amount",
			"currency",
			"status",
			"due_date",
		).
		Values(
			inv.ID,
			numberExpr,
			inv.BusinessID,
			inv.BookingID,
			inv.ClientName,
			inv.ClientEmail,
			inv.Amount,
			inv.Currency,
			inv.Status,
			inv.DueDate,
		).
		Suffix("RETURNING invoice_number, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&inv.InvoiceNumber, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time
	return inv, nil
}

// GetByID fetches an invoice scoped to a business
func (r *Repository) GetByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"id": invoiceID, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inv, err := r.scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan invoice: %v", ErrScanRow, err)
	}
	return inv, nil
}

// ListByBusiness fetches a business's invoices, newest first, optionally
// filtered by status
func (r *Repository) ListByBusiness(ctx context.Context, businessID string, status *domain.InvoiceStatus) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return invoices, nil
}

// UpdateStatus moves an invoice to a new status
func (r *Repository) UpdateStatus(ctx context.Context, businessID, invoiceID string, status domain.InvoiceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("invoices").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": invoiceID, "business_id": businessID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// MarkPaidByBooking settles the invoice tied to a booking. Called from
// payment confirmation, so a booking with no invoice is not an error.
func (r *Repository) MarkPaidByBooking(ctx context.Context, bookingID string, paidAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("status", domain.InvoicePaid).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.NotEq{"status": domain.InvoiceCancelled}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaidByBooking - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkPaidByBooking - execute update: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var paidAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.BusinessID,
		&inv.BookingID,
		&inv.ClientName,
		&inv.ClientEmail,
		&inv.Amount,
		&inv.Currency,
		&inv.Status,
		&inv.DueDate,
		&paidAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		inv.PaidAt = &paidAt.Time
	}
	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time
	return &inv, nil
}
