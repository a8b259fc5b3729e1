package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/boinvit/booking-service/pkg/types"
)

// DayHours is the opening window for a single weekday
type DayHours struct {
	Open  types.TimeString `json:"open"`
	Close types.TimeString `json:"close"`
}

// BusinessHours maps lowercase weekday names ("monday"..."sunday") to opening
// windows. A missing weekday means the business is closed that day.
// Stored as a JSONB column.
type BusinessHours map[string]DayHours

// ForDate returns the opening window for the given date's weekday
func (h BusinessHours) ForDate(date time.Time) (DayHours, bool) {
	day, ok := h[strings.ToLower(date.Weekday().String())]
	return day, ok
}

// Validate checks that every configured day has a well-formed window
func (h BusinessHours) Validate() error {
	for day, hours := range h {
		if !validWeekday(day) {
			return fmt.Errorf("unknown weekday %q", day)
		}
		if err := hours.Open.Validate(); err != nil {
			return fmt.Errorf("%s open: %w", day, err)
		}
		if err := hours.Close.Validate(); err != nil {
			return fmt.Errorf("%s close: %w", day, err)
		}
		if !hours.Open.IsBefore(hours.Close) {
			return fmt.Errorf("%s: open time %s must be before close time %s", day, hours.Open, hours.Close)
		}
	}
	return nil
}

func validWeekday(day string) bool {
	switch day {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}

// Value implements driver.Valuer for JSONB storage
func (h BusinessHours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan implements sql.Scanner for JSONB storage
func (h *BusinessHours) Scan(src interface{}) error {
	return scanJSON(src, h, "BusinessHours")
}

// PaymentConfig is a business's gateway and payout configuration.
// Stored as a JSONB column.
type PaymentConfig struct {
	// SubaccountCode, when set, delegates the payment split to the gateway's
	// subaccount mechanism; the locally computed split becomes advisory.
	SubaccountCode string `json:"subaccount_code,omitempty"`
	// PlatformFeePercent overrides the service-wide fee for this business
	PlatformFeePercent *float64 `json:"platform_fee_percent,omitempty"`
	MpesaNumber        string   `json:"mpesa_number,omitempty"`
	BankName           string   `json:"bank_name,omitempty"`
	BankAccountNumber  string   `json:"bank_account_number,omitempty"`
	BankAccountName    string   `json:"bank_account_name,omitempty"`
}

// HasSubaccount reports whether the gateway performs the split itself
func (c PaymentConfig) HasSubaccount() bool {
	return c.SubaccountCode != ""
}

// Value implements driver.Valuer for JSONB storage
func (c PaymentConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB storage
func (c *PaymentConfig) Scan(src interface{}) error {
	return scanJSON(src, c, "PaymentConfig")
}

func scanJSON(src, dst interface{}, what string) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("domain: cannot scan %T into %s", src, what)
	}
}

// Business represents a tenant: a service business taking bookings
type Business struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Country string

	// Currency is the tag carried onto bookings and payments, never converted
	Currency string

	Hours         BusinessHours
	PaymentConfig PaymentConfig

	// SlotIntervalMinutes is the booking grid step; defaults to
	// DefaultSlotIntervalMinutes when zero
	SlotIntervalMinutes int

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotInterval returns the configured booking grid step in minutes
func (b *Business) SlotInterval() int {
	if b.SlotIntervalMinutes <= 0 {
		return DefaultSlotIntervalMinutes
	}
	return b.SlotIntervalMinutes
}

// FeePercent returns the platform fee percentage for this business,
// falling back to the service-wide default
func (b *Business) FeePercent(serviceDefault float64) float64 {
	if b.PaymentConfig.PlatformFeePercent != nil {
		return *b.PaymentConfig.PlatformFeePercent
	}
	return serviceDefault
}
