package domain

import "time"

// EligibilityReason is the outcome of a reschedule or cancellation check.
// Every ineligible outcome carries a specific reason so the caller can show
// the client exactly why the change was refused.
type EligibilityReason string

const (
	// Eligible means the change is allowed
	Eligible EligibilityReason = "eligible"
	// AlreadyRescheduled means the booking has used up its single reschedule
	AlreadyRescheduled EligibilityReason = "already_rescheduled"
	// WrongStatus means the booking's status does not permit the change
	WrongStatus EligibilityReason = "wrong_status"
	// TooClose means the appointment starts within the change window
	TooClose EligibilityReason = "too_close"
)

// IsEligible reports whether the check passed
func (r EligibilityReason) IsEligible() bool {
	return r == Eligible
}

// Message returns the user-facing explanation for the outcome
func (r EligibilityReason) Message() string {
	switch r {
	case Eligible:
		return "booking can be changed"
	case AlreadyRescheduled:
		return "this booking has already been rescheduled once"
	case WrongStatus:
		return "only confirmed bookings can be rescheduled"
	case TooClose:
		return "bookings can only be changed more than 2 hours before the appointment"
	default:
		return "booking cannot be changed"
	}
}

// CheckReschedulable is the single evaluation point for the reschedule rule:
// the booking must be confirmed, must not have been rescheduled before
// (RescheduleCount is canonical), and must start more than RescheduleWindow
// from now. Checks are ordered so the most specific refusal wins.
func CheckReschedulable(b *Booking, now time.Time) EligibilityReason {
	if b.Status != StatusConfirmed {
		return WrongStatus
	}
	if b.RescheduleCount >= MaxReschedules {
		return AlreadyRescheduled
	}
	if withinChangeWindow(b, now) {
		return TooClose
	}
	return Eligible
}

// CheckCancellable applies the cancellation rule: pending bookings can always
// be cancelled, confirmed bookings only outside the change window.
func CheckCancellable(b *Booking, now time.Time) EligibilityReason {
	switch b.Status {
	case StatusPending:
		return Eligible
	case StatusConfirmed:
		if withinChangeWindow(b, now) {
			return TooClose
		}
		return Eligible
	default:
		return WrongStatus
	}
}

// withinChangeWindow reports whether the appointment starts RescheduleWindow
// or less from now. A booking whose start cannot be computed (malformed time)
// is treated as inside the window, refusing the change.
func withinChangeWindow(b *Booking, now time.Time) bool {
	start, err := b.StartAt()
	if err != nil {
		return true
	}
	return !now.Add(RescheduleWindow).Before(start)
}
