package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/pkg/dbmetrics"
	"github.com/boinvit/booking-service/pkg/psqlbuilder"
)

// uniqueViolation is the Postgres error code for unique constraint breaches
const uniqueViolation = "23505"

var transactionColumns = []string{
	"id",
	"reference",
	"business_id",
	"booking_id",
	"amount",
	"platform_fee",
	"business_amount",
	"currency",
	"channel",
	"status",
	"gateway_reference",
	"authorization_url",
	"paid_at",
	"created_at",
	"updated_at",
}

// Repository is the payment transactions and payouts storage layer
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a payments repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateTransaction inserts a new payment transaction. The reference column
// carries a unique constraint; a duplicate insert surfaces as
// ErrDuplicateReference, which makes retried initiations safe.
func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.PaymentTransaction) (*domain.PaymentTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_transactions").
		Columns(
			"id",
			"reference",
			"business_id",
			"booking_id",
			"amount",
			"platform_fee",
			"business_amount",
			"currency",
			"channel",
			"status",
			"authorization_url",
		).
		Values(
			tx.ID,
			tx.Reference,
			tx.BusinessID,
			tx.BookingID,
			tx.Amount,
			tx.PlatformFee,
			tx.BusinessAmount,
			tx.Currency,
			tx.Channel,
			tx.Status,
			tx.AuthorizationURL,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTransaction - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: CreateTransaction - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time
	tx.UpdatedAt = updatedAt.Time
	return tx, nil
}

// GetByReference fetches a transaction by its server-generated reference
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.PaymentTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("payment_transactions").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	tx, err := r.scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan transaction: %v", ErrScanRow, err)
	}
	return tx, nil
}

// UpdateStatus moves a transaction to a new lifecycle status
func (r *Repository) UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_transactions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// SetAuthorization stores the gateway checkout URL and moves the transaction
// from initialized to pending
func (r *Repository) SetAuthorization(ctx context.Context, reference, authorizationURL string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_transactions").
		Set("status", domain.TxPending).
		Set("authorization_url", authorizationURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAuthorization - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetAuthorization", query, args)
}

// MarkCompleted finalizes a verified transaction with the gateway's own
// reference and payment timestamp
func (r *Repository) MarkCompleted(ctx context.Context, reference, gatewayReference string, paidAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_transactions").
		Set("status", domain.TxCompleted).
		Set("gateway_reference", gatewayReference).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "MarkCompleted", query, args)
}

// ListByBusiness fetches a business's transactions, newest first
func (r *Repository) ListByBusiness(ctx context.Context, businessID string, status *domain.TransactionStatus) ([]*domain.PaymentTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(transactionColumns...).
		From("payment_transactions").
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

	transactions := make([]*domain.PaymentTransaction, 0)
	for rows.Next() {
		tx, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// ListPayouts fetches a business's payouts, newest first
func (r *Repository) ListPayouts(ctx context.Context, businessID string) ([]*domain.BusinessPayout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "amount", "currency", "period_start", "period_end", "status", "created_at",
	).
		From("business_payouts").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("period_end DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPayouts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPayouts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payouts := make([]*domain.BusinessPayout, 0)
	for rows.Next() {
		var p domain.BusinessPayout
		var createdAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Amount, &p.Currency, &p.PeriodStart, &p.PeriodEnd, &p.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListPayouts - scan row: %v", ErrScanRow, err)
		}
		p.CreatedAt = createdAt.Time
		payouts = append(payouts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPayouts - rows error: %v", ErrScanRow, err)
	}

	return payouts, nil
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
		return ErrTransactionNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanTransaction(row rowScanner) (*domain.PaymentTransaction, error) {
	var tx domain.PaymentTransaction
	var paidAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tx.ID,
		&tx.Reference,
		&tx.BusinessID,
		&tx.BookingID,
		&tx.Amount,
		&tx.PlatformFee,
		&tx.BusinessAmount,
		&tx.Currency,
		&tx.Channel,
		&tx.Status,
		&tx.GatewayReference,
		&tx.AuthorizationURL,
		&paidAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		tx.PaidAt = &paidAt.Time
	}
	tx.CreatedAt = createdAt.Time
	tx.UpdatedAt = updatedAt.Time
	return &tx, nil
}
