package get_available_slots

import (
	"time"

	"github.com/boinvit/booking-service/pkg/types"
)

// Request asks for the bookable grid of one business day
type Request struct {
	BusinessID string
	ServiceID  string
	Date       time.Time // calendar date, time part ignored
}

// Slot is one entry of the daily grid. Taken and past slots stay in the
// sequence with Available=false so a caller can render the whole day.
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// Response carries the generated grid
type Response struct {
	BusinessID      string
	ServiceID       string
	Date            time.Time
	DurationMinutes int
	Slots           []Slot
}
