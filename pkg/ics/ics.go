// Package ics renders a single-event iCalendar document for booking
// confirmations. Clients import the file into their device calendar; a
// reminder alarm fires a fixed interval before the appointment.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const (
	prodID     = "-//Boinvit//Booking Service//EN"
	timeLayout = "20060102T150405"
)

// Event is a calendar entry for a confirmed booking
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	// AlarmBefore is how long before the start the reminder fires.
	// Zero means the default of 60 minutes.
	AlarmBefore time.Duration
}

// Encode renders the event as an iCalendar document
func Encode(e Event) string {
	alarm := e.AlarmBefore
	if alarm <= 0 {
		alarm = 60 * time.Minute
	}

	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:" + prodID)
	writeLine("CALSCALE:GREGORIAN")
	writeLine("METHOD:PUBLISH")
	writeLine("BEGIN:VEVENT")
	writeLine("UID:" + escape(e.UID))
	writeLine("DTSTAMP:" + time.Now().UTC().Format(timeLayout) + "Z")
	// Booking times are local wall clock, so they are written as floating
	// times without a timezone suffix.
	writeLine("DTSTART:" + e.Start.Format(timeLayout))
	writeLine("DTEND:" + e.End.Format(timeLayout))
	writeLine("SUMMARY:" + escape(e.Summary))
	if e.Description != "" {
		writeLine("DESCRIPTION:" + escape(e.Description))
	}
	if e.Location != "" {
		writeLine("LOCATION:" + escape(e.Location))
	}
	writeLine("BEGIN:VALARM")
	writeLine("ACTION:DISPLAY")
	writeLine("DESCRIPTION:" + escape(e.Summary))
	writeLine(fmt.Sprintf("TRIGGER:-PT%dM", int(alarm.Minutes())))
	writeLine("END:VALARM")
	writeLine("END:VEVENT")
	writeLine("END:VCALENDAR")

	return b.String()
}

// escape applies RFC 5545 text escaping
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
		"\r", "",
	)
	return r.Replace(s)
}
