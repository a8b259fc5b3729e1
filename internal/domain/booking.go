package domain

import (
	"time"

	"github.com/boinvit/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusRescheduled BookingStatus = "rescheduled"
	StatusNoShow      BookingStatus = "no_show"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Booking represents a service appointment in the system
type Booking struct {
	ID         string
	BusinessID string
	ServiceID  string
	ClientID   string

	// Denormalized client identity for history / search
	ClientName  string
	ClientEmail string
	ClientPhone string

	// Denormalized service data for history
	ServiceName string

	BookingDate     time.Time        // calendar date, time part zero
	BookingTime     types.TimeString // local wall-clock start, "HH:MM"
	DurationMinutes int

	Status           BookingStatus
	PaymentStatus    PaymentStatus
	PaymentReference *string

	TotalAmount float64
	Currency    string

	// RescheduleCount is the canonical reschedule tracking field.
	// Business rule caps it at MaxReschedules.
	RescheduleCount int

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartAt combines the booking date and start time into a single local timestamp
func (b *Booking) StartAt() (time.Time, error) {
	return b.BookingTime.OnDate(b.BookingDate)
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinished returns true if the booking has reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// IsPaid returns true if the booking's payment has been confirmed
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentCompleted
}

// BusinessBookingsFilter narrows booking listings for a business
type BusinessBookingsFilter struct {
	BusinessID      string
	StartDate       *time.Time     // inclusive period start, nil = unbounded
	EndDate         *time.Time     // inclusive period end, nil = unbounded
	Status          *BookingStatus // nil = any
	IncludeInactive bool           // include cancelled / no-show rows
}

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow:
		return true
	}
	return false
}
