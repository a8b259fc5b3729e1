package reschedule_booking

import (
	"time"

	"github.com/boinvit/booking-service/pkg/types"
)

// Request moves a booking to a new slot
type Request struct {
	BookingID string
	Date      time.Time        // target calendar date
	StartTime types.TimeString // target slot start, "HH:MM"
}

// Response is the booking after the move
type Response struct {
	ID              string
	BusinessID      string
	ServiceID       string
	ServiceName     string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	RescheduleCount int
	UpdatedAt       time.Time
}
