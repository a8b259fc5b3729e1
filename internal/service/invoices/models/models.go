package models

import (
	"time"

	"github.com/boinvit/booking-service/internal/domain"
)

// Request models

// CreateInvoiceRequest bills a booking
type CreateInvoiceRequest struct {
	BusinessID string `json:"businessId"`
	BookingID  string `json:"bookingId"`
	// DueDays overrides the default payment term when positive
	DueDays int `json:"dueDays,omitempty"`
}

// ListInvoicesRequest lists a business's invoices
type ListInvoicesRequest struct {
	BusinessID string  `json:"businessId"`
	Status     *string `json:"status,omitempty"`
}

// UpdateStatusRequest moves an invoice to a new status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// InvoiceResponse is the invoice wire representation
type InvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	BusinessID    string `json:"businessId"`
	BookingID     string `json:"bookingId"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`

	Amount          float64 `json:"amount"`
	AmountFormatted string  `json:"amountFormatted"`
	Currency        string  `json:"currency"`

	Status  string     `json:"status"`
	DueDate string     `json:"dueDate"` // "2026-09-22"
	PaidAt  *time.Time `json:"paidAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InvoiceListResponse is a list of invoices
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// FromDomainInvoice converts an invoice into its wire form
func FromDomainInvoice(inv *domain.Invoice, amountFormatted string) *InvoiceResponse {
	return &InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		BusinessID:      inv.BusinessID,
		BookingID:       inv.BookingID,
		ClientName:      inv.ClientName,
		ClientEmail:     inv.ClientEmail,
		Amount:          inv.Amount,
		AmountFormatted: amountFormatted,
		Currency:        inv.Currency,
		Status:          string(inv.Status),
		DueDate:         inv.DueDate.Format(domain.DateFormat),
		PaidAt:          inv.PaidAt,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}
