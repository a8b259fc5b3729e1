package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func morningHours(t *testing.T, open, close string) domain.DayHours {
	t.Helper()
	return domain.DayHours{Open: mustTime(t, open), Close: mustTime(t, close)}
}

func activeBooking(t *testing.T, startTime string, durationMinutes int) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:              "b-1",
		Status:          domain.StatusConfirmed,
		BookingTime:     mustTime(t, startTime),
		DurationMinutes: durationMinutes,
	}
}

func TestGenerateSlotsEmptyDay(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 30, nil, date, now)
	require.NoError(t, err)

	require.Len(t, slots, 6)
	expected := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	for i, slot := range slots {
		assert.Equal(t, expected[i], slot.StartTime.String())
		assert.True(t, slot.Available, "slot %s should be available", slot.StartTime)
	}
}

func TestGenerateSlotsClosingTimeNeverEmitted(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 30, nil, date, now)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.NotEqual(t, "12:00", slot.StartTime.String())
	}
}

func TestGenerateSlotsBookingTagsSlotTaken(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	bookings := []*domain.Booking{activeBooking(t, "10:00", 30)}

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 30, bookings, date, now)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	for _, slot := range slots {
		if slot.StartTime.String() == "10:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s should stay available", slot.StartTime)
		}
	}
}

func TestGenerateSlotsLongServiceBlocksOverlap(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	// 60-minute booking at 10:00 occupies the 10:00 and 10:30 ticks, and a
	// 60-minute candidate starting 09:30 would run into it as well
	bookings := []*domain.Booking{activeBooking(t, "10:00", 60)}

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 60, bookings, date, now)
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.True(t, byTime["09:00"])
	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
}

func TestGenerateSlotsBoundaryTouchIsNotOverlap(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	// booking 09:30-10:00: the 09:00 slot ends exactly where it starts
	bookings := []*domain.Booking{activeBooking(t, "09:30", 30)}

	slots, err := generateSlots(morningHours(t, "09:00", "11:00"), 30, 30, bookings, date, now)
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.True(t, byTime["09:00"])
	assert.False(t, byTime["09:30"])
	assert.True(t, byTime["10:00"])
}

func TestGenerateSlotsCancelledBookingIgnored(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	cancelled := activeBooking(t, "10:00", 30)
	cancelled.Status = domain.StatusCancelled

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 30, []*domain.Booking{cancelled}, date, now)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateSlotsPastTimesTaggedToday(t *testing.T) {
	// now is 10:15 on the requested date itself
	now := time.Date(2026, 9, 10, 10, 15, 0, 0, time.Local)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 30, nil, date, now)
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.False(t, byTime["09:00"])
	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.True(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
	assert.True(t, byTime["11:30"])
}

func TestGenerateSlotsFutureDateIgnoresWallClock(t *testing.T) {
	// late evening today must not affect tomorrow's grid
	now := time.Date(2026, 9, 10, 23, 0, 0, 0, time.Local)
	date := time.Date(2026, 9, 11, 0, 0, 0, 0, time.Local)

	slots, err := generateSlots(morningHours(t, "09:00", "12:00"), 30, 30, nil, date, now)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}
