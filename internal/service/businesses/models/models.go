package models

import (
	"github.com/boinvit/booking-service/internal/domain"
)

// Request models

// UpdateHoursRequest replaces a business's weekly opening windows
type UpdateHoursRequest struct {
	Hours domain.BusinessHours `json:"hours"`
}

// UpdatePaymentConfigRequest replaces a business's payout configuration
type UpdatePaymentConfigRequest struct {
	SubaccountCode     string   `json:"subaccountCode,omitempty"`
	PlatformFeePercent *float64 `json:"platformFeePercent,omitempty"`
	MpesaNumber        string   `json:"mpesaNumber,omitempty"`
	BankName           string   `json:"bankName,omitempty"`
	BankAccountNumber  string   `json:"bankAccountNumber,omitempty"`
	BankAccountName    string   `json:"bankAccountName,omitempty"`
}

// ToDomain converts the request into a domain payment config
func (r *UpdatePaymentConfigRequest) ToDomain() domain.PaymentConfig {
	return domain.PaymentConfig{
		SubaccountCode:     r.SubaccountCode,
		PlatformFeePercent: r.PlatformFeePercent,
		MpesaNumber:        r.MpesaNumber,
		BankName:           r.BankName,
		BankAccountNumber:  r.BankAccountNumber,
		BankAccountName:    r.BankAccountName,
	}
}

// Response models

// BusinessResponse is the public booking page payload
type BusinessResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Phone    string               `json:"phone,omitempty"`
	Address  string               `json:"address,omitempty"`
	City     string               `json:"city,omitempty"`
	Country  string               `json:"country,omitempty"`
	Currency string               `json:"currency"`
	Hours    domain.BusinessHours `json:"hours"`

	SlotIntervalMinutes int  `json:"slotIntervalMinutes"`
	AcceptsCardPayments bool `json:"acceptsCardPayments"`
}

// ServiceResponse is one bookable offering
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse is a business's service catalogue
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// ResolveLinkResponse classifies a scanned QR payload
type ResolveLinkResponse struct {
	Kind       string `json:"kind"` // business | external_url | text
	BusinessID string `json:"businessId,omitempty"`
	URL        string `json:"url,omitempty"`
	Text       string `json:"text,omitempty"`
}

// FromDomainBusiness converts a business into its public wire form. Payout
// details never leave the server.
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:                  b.ID,
		Name:                b.Name,
		Email:               b.Email,
		Phone:               b.Phone,
		Address:             b.Address,
		City:                b.City,
		Country:             b.Country,
		Currency:            b.Currency,
		Hours:               b.Hours,
		SlotIntervalMinutes: b.SlotInterval(),
		AcceptsCardPayments: b.PaymentConfig.HasSubaccount(),
	}
}

// FromDomainServices converts the service catalogue
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			Price:           svc.Price,
			Currency:        svc.Currency,
			DurationMinutes: svc.DurationMinutes,
		})
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}
