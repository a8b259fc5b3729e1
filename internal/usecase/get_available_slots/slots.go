package get_available_slots

import (
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/pkg/types"
)

// generateSlots builds the full daily grid for the given opening window.
// Slots start at the opening time and advance by intervalMinutes while the
// start stays strictly before closing time; the closing-time tick itself is
// never emitted. An overlapping active booking or, on the current day, a
// start time already in the past tags the slot unavailable instead of
// removing it.
func generateSlots(
	hours domain.DayHours,
	intervalMinutes int,
	serviceDuration int,
	bookings []*domain.Booking,
	requestDate time.Time,
	now time.Time,
) ([]Slot, error) {
	slots := make([]Slot, 0)

	today := isSameDay(requestDate, now)
	nowTime := types.NewTimeString(now)

	current := hours.Open
	for current.IsBefore(hours.Close) {
		available := true

		if today && current.IsBefore(nowTime) {
			available = false
		}
		if available && isSlotTaken(current, serviceDuration, bookings) {
			available = false
		}

		slots = append(slots, Slot{StartTime: current, Available: available})

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes wraps past midnight; a wrapped tick means the grid is done
		if next.IsBefore(current) || next == current {
			break
		}
		current = next
	}

	return slots, nil
}

// isSlotTaken reports whether any active booking overlaps the candidate
// interval. Boundary touches do not count: a booking ending exactly at the
// slot start leaves the slot free.
func isSlotTaken(slotStart types.TimeString, serviceDuration int, bookings []*domain.Booking) bool {
	slotEnd, err := slotStart.AddMinutes(serviceDuration)
	if err != nil {
		return false
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.BookingTime
		bookingEnd, err := booking.BookingTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return true
		}
	}

	return false
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
