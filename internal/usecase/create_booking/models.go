package create_booking

import (
	"time"

	"github.com/boinvit/booking-service/pkg/types"
)

// Request is the public booking form payload
type Request struct {
	BusinessID  string
	ServiceID   string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Date        time.Time        // calendar date, time part zero
	StartTime   types.TimeString // slot start, "HH:MM"
	Notes       *string
}

// Response is the created booking
type Response struct {
	ID         string
	BusinessID string
	ServiceID  string
	ClientID   string

	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceName     string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Status        string
	PaymentStatus string

	TotalAmount float64
	Currency    string

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
