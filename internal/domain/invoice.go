package domain

import "time"

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice bills a client for a booking
type Invoice struct {
	ID            string
	InvoiceNumber string
	BusinessID    string
	BookingID     string

	ClientName  string
	ClientEmail string

	Amount   float64
	Currency string

	Status  InvoiceStatus
	DueDate time.Time
	PaidAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidInvoiceStatus reports whether s is a known invoice status
func ValidInvoiceStatus(s string) bool {
	switch InvoiceStatus(s) {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// Review is a client's rating of a completed booking
type Review struct {
	ID         string
	BusinessID string
	BookingID  string
	ClientName string
	Rating     int // 1..5
	Comment    *string
	CreatedAt  time.Time
}
