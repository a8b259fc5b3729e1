package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/pkg/dbmetrics"
	"github.com/boinvit/booking-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository is the reviews storage layer
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a reviews repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a review. The booking_id column is unique so a booking can
// only be reviewed once; a repeat surfaces as ErrDuplicateReview.
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("id", "business_id", "booking_id", "client_name", "rating", "comment").
		Values(rev.ID, rev.BusinessID, rev.BookingID, rev.ClientName, rev.Rating, rev.Comment).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.CreatedAt = createdAt.Time
	return rev, nil
}

// ListByBusiness fetches a business's reviews, newest first
func (r *Repository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "booking_id", "client_name", "rating", "comment", "created_at",
	).
		From("reviews").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		var createdAt sql.NullTime
		if err := rows.Scan(&rev.ID, &rev.BusinessID, &rev.BookingID, &rev.ClientName, &rev.Rating, &rev.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		rev.CreatedAt = createdAt.Time
		reviews = append(reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AverageRating returns the business's mean rating and review count
func (r *Repository) AverageRating(ctx context.Context, businessID string) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(AVG(rating), 0)",
		"COUNT(*)",
	).
		From("reviews").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - scan row: %v", ErrScanRow, err)
	}
	return avg, count, nil
}
