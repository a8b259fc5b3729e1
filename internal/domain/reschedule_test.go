package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/boinvit/booking-service/pkg/types"
)

// bookingStartingIn builds a confirmed booking whose appointment starts the
// given duration after the returned "now"
func bookingStartingIn(d time.Duration) (*Booking, time.Time) {
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	start := now.Add(d)
	return &Booking{
		Status:          StatusConfirmed,
		RescheduleCount: 0,
		BookingDate:     time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		BookingTime:     types.NewTimeString(start),
	}, now
}

func TestCheckReschedulable(t *testing.T) {
	t.Run("confirmed booking three hours ahead is eligible", func(t *testing.T) {
		b, now := bookingStartingIn(3 * time.Hour)
		assert.Equal(t, Eligible, CheckReschedulable(b, now))
	})

	t.Run("one hour ahead is too close", func(t *testing.T) {
		b, now := bookingStartingIn(time.Hour)
		assert.Equal(t, TooClose, CheckReschedulable(b, now))
	})

	t.Run("exactly at the window boundary is too close", func(t *testing.T) {
		b, now := bookingStartingIn(RescheduleWindow)
		assert.Equal(t, TooClose, CheckReschedulable(b, now))
	})

	t.Run("just beyond the boundary is eligible", func(t *testing.T) {
		b, now := bookingStartingIn(RescheduleWindow + time.Minute)
		assert.Equal(t, Eligible, CheckReschedulable(b, now))
	})

	t.Run("already rescheduled wins over margin", func(t *testing.T) {
		b, now := bookingStartingIn(72 * time.Hour)
		b.RescheduleCount = 1
		assert.Equal(t, AlreadyRescheduled, CheckReschedulable(b, now))
	})

	t.Run("non-confirmed statuses are refused", func(t *testing.T) {
		for _, status := range []BookingStatus{StatusPending, StatusCompleted, StatusCancelled, StatusNoShow} {
			b, now := bookingStartingIn(3 * time.Hour)
			b.Status = status
			assert.Equal(t, WrongStatus, CheckReschedulable(b, now), "status %s", status)
		}
	})
}

func TestCheckCancellable(t *testing.T) {
	t.Run("pending is always cancellable", func(t *testing.T) {
		b, now := bookingStartingIn(30 * time.Minute)
		b.Status = StatusPending
		assert.Equal(t, Eligible, CheckCancellable(b, now))
	})

	t.Run("confirmed outside the window", func(t *testing.T) {
		b, now := bookingStartingIn(5 * time.Hour)
		assert.Equal(t, Eligible, CheckCancellable(b, now))
	})

	t.Run("confirmed inside the window", func(t *testing.T) {
		b, now := bookingStartingIn(90 * time.Minute)
		assert.Equal(t, TooClose, CheckCancellable(b, now))
	})

	t.Run("terminal statuses are refused", func(t *testing.T) {
		b, now := bookingStartingIn(5 * time.Hour)
		b.Status = StatusCompleted
		assert.Equal(t, WrongStatus, CheckCancellable(b, now))
	})
}

func TestEligibilityReason_Message(t *testing.T) {
	// Each refusal carries its own user-facing explanation
	seen := map[string]bool{}
	for _, r := range []EligibilityReason{Eligible, AlreadyRescheduled, WrongStatus, TooClose} {
		msg := r.Message()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}
}
