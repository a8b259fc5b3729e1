package domain

import "time"

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultPlatformFeePercent  = 7.5
	DefaultInvoiceDueDays      = 7
)

// Business rules
const (
	// MaxReschedules caps how many times a single booking may be moved
	MaxReschedules = 1

	// RescheduleWindow is how close to the appointment start changes stop
	// being allowed
	RescheduleWindow = 2 * time.Hour

	MinRating = 1
	MaxRating = 5

	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are bookings that no longer occupy their slot.
// Used when counting slot conflicts.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
