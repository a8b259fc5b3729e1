package create_booking

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

func dayHours(t *testing.T, open, close string) domain.DayHours {
	t.Helper()
	return domain.DayHours{Open: mustTime(t, open), Close: mustTime(t, close)}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		BusinessID:  "biz-1",
		ServiceID:   "svc-1",
		ClientName:  "Jane Wanjiku",
		ClientEmail: "jane@example.com",
		ClientPhone: "+254700000000",
		Date:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local),
		StartTime:   mustTime(t, "10:00"),
	}
}

func TestValidateRequest(t *testing.T) {
	req := validRequest(t)
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequestMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"no business", func(r *Request) { r.BusinessID = "" }},
		{"no service", func(r *Request) { r.ServiceID = "" }},
		{"blank name", func(r *Request) { r.ClientName = "   " }},
		{"bad email", func(r *Request) { r.ClientEmail = "not-an-email" }},
		{"no date", func(r *Request) { r.Date = time.Time{} }},
		{"no time", func(r *Request) { r.StartTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			err := validateRequest(req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateSlotFitsOnGrid(t *testing.T) {
	hours := dayHours(t, "09:00", "17:00")

	assert.NoError(t, validateSlotFits(hours, 30, 60, mustTime(t, "09:00")))
	assert.NoError(t, validateSlotFits(hours, 30, 60, mustTime(t, "16:00")))
}

func TestValidateSlotFitsOffGrid(t *testing.T) {
	hours := dayHours(t, "09:00", "17:00")

	err := validateSlotFits(hours, 30, 60, mustTime(t, "09:10"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestValidateSlotFitsGridAnchoredToOpen(t *testing.T) {
	// The grid starts at opening time, not at the top of the hour
	hours := dayHours(t, "09:15", "17:15")

	assert.NoError(t, validateSlotFits(hours, 30, 30, mustTime(t, "09:45")))
	assert.ErrorIs(t, validateSlotFits(hours, 30, 30, mustTime(t, "10:00")), ErrInvalidTimeSlot)
}

func TestValidateSlotFitsOutsideHours(t *testing.T) {
	hours := dayHours(t, "09:00", "17:00")

	assert.ErrorIs(t, validateSlotFits(hours, 30, 30, mustTime(t, "08:30")), ErrInvalidTimeSlot)
	// Closing tick itself is not bookable
	assert.ErrorIs(t, validateSlotFits(hours, 30, 30, mustTime(t, "17:00")), ErrInvalidTimeSlot)
}

func TestValidateSlotFitsDurationBeyondClose(t *testing.T) {
	hours := dayHours(t, "09:00", "17:00")

	// 90-minute service starting at 16:00 ends 17:30, after close
	err := validateSlotFits(hours, 30, 90, mustTime(t, "16:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// Ending exactly at close is fine
	assert.NoError(t, validateSlotFits(hours, 30, 60, mustTime(t, "16:00")))
}

func TestHasOverlap(t *testing.T) {
	existing := []*domain.Booking{
		{
			ID:              "b-1",
			Status:          domain.StatusConfirmed,
			BookingTime:     mustTime(t, "10:00"),
			DurationMinutes: 60,
		},
	}

	overlap, err := hasOverlap(mustTime(t, "10:30"), 60, existing)
	require.NoError(t, err)
	assert.True(t, overlap)

	// Boundary touch: new slot ends exactly when the existing one starts
	overlap, err = hasOverlap(mustTime(t, "09:00"), 60, existing)
	require.NoError(t, err)
	assert.False(t, overlap)

	// And starts exactly when the existing one ends
	overlap, err = hasOverlap(mustTime(t, "11:00"), 60, existing)
	require.NoError(t, err)
	assert.False(t, overlap)
}

func TestHasOverlapIgnoresCancelled(t *testing.T) {
	existing := []*domain.Booking{
		{
			ID:              "b-1",
			Status:          domain.StatusCancelled,
			BookingTime:     mustTime(t, "10:00"),
			DurationMinutes: 60,
		},
	}

	overlap, err := hasOverlap(mustTime(t, "10:00"), 60, existing)
	require.NoError(t, err)
	assert.False(t, overlap)
}
