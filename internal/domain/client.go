package domain

import "time"

// Client is a customer of a business, keyed per tenant and deduplicated by
// email on booking creation
type Client struct {
	ID         string
	BusinessID string
	Name       string
	Email      string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
