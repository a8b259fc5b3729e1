package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	doc := Encode(Event{
		UID:         "booking-42@boinvit",
		Summary:     "Haircut; Deluxe",
		Description: "Booked via Boinvit",
		Location:    "Salon One, Nairobi",
		Start:       start,
		End:         start.Add(30 * time.Minute),
	})

	assert.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(doc, "END:VCALENDAR\r\n"))
	assert.Contains(t, doc, "UID:booking-42@boinvit\r\n")
	assert.Contains(t, doc, "DTSTART:20260314T100000\r\n")
	assert.Contains(t, doc, "DTEND:20260314T103000\r\n")
	// RFC 5545 escaping of separators
	assert.Contains(t, doc, "SUMMARY:Haircut\\; Deluxe\r\n")
	assert.Contains(t, doc, "LOCATION:Salon One\\, Nairobi\r\n")
	// Default reminder is 60 minutes before start
	assert.Contains(t, doc, "TRIGGER:-PT60M\r\n")
}

func TestEncode_CustomAlarm(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	doc := Encode(Event{
		UID:         "b@boinvit",
		Summary:     "Checkup",
		Start:       start,
		End:         start.Add(time.Hour),
		AlarmBefore: 15 * time.Minute,
	})
	assert.Contains(t, doc, "TRIGGER:-PT15M\r\n")
}
