// Package money holds the amount arithmetic and display formatting used by
// the payment flow. Amounts are decimal values in the booking's currency;
// currency codes are opaque tags and are never converted.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNegativeAmount is returned when an amount below zero reaches the calculator
	ErrNegativeAmount = errors.New("money: amount must not be negative")

	// ErrInvalidPercent is returned for a fee percentage outside [0, 100]
	ErrInvalidPercent = errors.New("money: percent must be between 0 and 100")
)

// Round2 rounds to two decimal places, half away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Split is the platform/business division of a gross payment amount
type Split struct {
	Gross          float64
	PlatformFee    float64
	BusinessAmount float64
}

// ComputeSplit divides a gross amount by the platform fee percentage:
// platform fee is the rounded percentage cut, the business keeps the rest.
// When the gateway performs the split itself (subaccount configured) the
// result is advisory and only stored for reporting.
func ComputeSplit(amount float64, percent float64) (Split, error) {
	if amount < 0 {
		return Split{}, ErrNegativeAmount
	}
	if percent < 0 || percent > 100 {
		return Split{}, fmt.Errorf("%w: %v", ErrInvalidPercent, percent)
	}

	fee := Round2(amount * percent / 100)
	return Split{
		Gross:          Round2(amount),
		PlatformFee:    fee,
		BusinessAmount: Round2(amount - fee),
	}, nil
}

// MinorUnits converts an amount to gateway minor units (amount x 100).
// The gateway API assumes a 2-decimal currency; 0-decimal currencies are
// not generalized here.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Format renders an amount with its currency code prefixed and thousands
// grouped: Format(1500.5, "KES") == "KES 1,500.50"
func Format(amount float64, currency string) string {
	negative := amount < 0 || (amount == 0 && math.Signbit(amount))
	fixed := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s.%s", currency, sign, grouped, parts[1])
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
