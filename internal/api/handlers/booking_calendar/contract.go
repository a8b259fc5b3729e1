package booking_calendar

import "context"

type BookingService interface {
	ExportCalendar(ctx context.Context, id string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
