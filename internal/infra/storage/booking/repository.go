package booking

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

var bookingColumns = []string{
	"id",
	"business_id",
	"service_id",
	"client_id",
	"client_name",
	"client_email",
	"client_phone",
	"service_name",
	"booking_date",
	"booking_time",
	"duration_minutes",
	"status",
	"payment_status",
	"payment_reference",
	"total_amount",
	"currency",
	"reschedule_count",
	"notes",
	"created_at",
	"updated_at",
}

// Repository is the bookings storage layer
type Repository struct {
	db DBExecutor
}

// NewRepository creates a bookings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. When the context carries an active
// transaction (slot-availability check + insert), the insert runs inside it.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"business_id",
			"service_id",
			"client_id",
			"client_name",
			"client_email",
			"client_phone",
			"service_name",
			"booking_date",
			"booking_time",
			"duration_minutes",
			"status",
			"payment_status",
			"total_amount",
			"currency",
			"reschedule_count",
			"notes",
		).
		Values(
			booking.ID,
			booking.BusinessID,
			booking.ServiceID,
			booking.ClientID,
			booking.ClientName,
			booking.ClientEmail,
			booking.ClientPhone,
			booking.ServiceName,
			booking.BookingDate,
			booking.BookingTime,
			booking.DurationMinutes,
			booking.Status,
			booking.PaymentStatus,
			booking.TotalAmount,
			booking.Currency,
			booking.RescheduleCount,
			booking.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID fetches a booking by its id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByBusinessWithFilter fetches a business's bookings with optional period
// and status filters. When the context carries a transaction and the filter
// targets a single date, rows are locked FOR UPDATE so a concurrent create
// cannot double-book the slot.
func (r *Repository) GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("booking_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, booking_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SearchByContact fetches bookings by client email or phone across all
// businesses, newest first. Drives the manage/search/history flows for
// clients without an account.
func (r *Repository) SearchByContact(ctx context.Context, email, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	or := squirrel.Or{}
	if email != "" {
		or = append(or, squirrel.Eq{"client_email": email})
	}
	if phone != "" {
		or = append(or, squirrel.Eq{"client_phone": phone})
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(or).
		OrderBy("booking_date DESC, booking_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SearchByContact - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchByContact - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus sets the booking status
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// MarkPaymentCompleted confirms the booking after a verified payment:
// status -> confirmed, payment_status -> completed, reference recorded
func (r *Repository) MarkPaymentCompleted(ctx context.Context, id string, reference string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("payment_status", domain.PaymentCompleted).
		Set("payment_reference", reference).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaymentCompleted - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "MarkPaymentCompleted", query, args)
}

// MarkPaymentFailed records a failed payment attempt on the booking
func (r *Repository) MarkPaymentFailed(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentFailed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaymentFailed - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "MarkPaymentFailed", query, args)
}

// Reschedule moves the booking to a new date/time and increments the
// reschedule counter. The status stays confirmed; the counter is what
// prevents a second move.
func (r *Repository) Reschedule(ctx context.Context, id string, date time.Time, startTime string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", date).
		Set("booking_time", startTime).
		Set("reschedule_count", squirrel.Expr("reschedule_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Reschedule", query, args)
}

// BusinessStats is a dashboard aggregate for one business and date
type BusinessStats struct {
	BookingsTotal     int
	BookingsConfirmed int
	BookingsPending   int
	Revenue           float64
	PendingPayments   int
}

// GetBusinessStats aggregates dashboard counters for a business on a date
func (r *Repository) GetBusinessStats(ctx context.Context, businessID string, date time.Time) (*BusinessStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'confirmed')",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'completed'), 0)",
		"COUNT(*) FILTER (WHERE payment_status = 'pending' AND status NOT IN ('cancelled', 'no_show'))",
	).
		From("bookings").
		Where(squirrel.Eq{"business_id": businessID, "booking_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats BusinessStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.BookingsTotal,
		&stats.BookingsConfirmed,
		&stats.BookingsPending,
		&stats.Revenue,
		&stats.PendingPayments,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessStats - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BusinessID,
		&booking.ServiceID,
		&booking.ClientID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.ServiceName,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentReference,
		&booking.TotalAmount,
		&booking.Currency,
		&booking.RescheduleCount,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
