package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/pkg/types"
)

func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateSlotFits(hours domain.DayHours, intervalMinutes, durationMinutes int, startTime types.TimeString) error {
	if startTime.IsBefore(hours.Open) || !startTime.IsBefore(hours.Close) {
		return fmt.Errorf("%w: outside business hours", ErrInvalidTimeSlot)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	openMinutes, err := hours.Open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if (startMinutes-openMinutes)%intervalMinutes != 0 {
		return fmt.Errorf("%w: start time is off the %d-minute grid", ErrInvalidTimeSlot, intervalMinutes)
	}

	end, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if end.IsAfter(hours.Close) || end.IsBefore(startTime) {
		return fmt.Errorf("%w: service does not fit before closing time", ErrInvalidTimeSlot)
	}

	return nil
}

// hasOverlap reports whether any active booking other than excludeID collides
// with the candidate interval
func hasOverlap(startTime types.TimeString, durationMinutes int, bookings []*domain.Booking, excludeID string) (bool, error) {
	end, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, booking := range bookings {
		if booking.ID == excludeID || !booking.IsActive() {
			continue
		}

		bookingEnd, err := booking.BookingTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if booking.BookingTime.IsBefore(end) && bookingEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
