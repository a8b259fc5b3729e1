package domain

import "time"

// Service is a bookable offering of a business. Reference data looked up
// when building a booking; price and duration are denormalized onto the
// booking at creation time.
type Service struct {
	ID              string
	BusinessID      string
	Name            string
	Description     *string
	Price           float64
	Currency        string
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
