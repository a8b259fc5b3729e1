package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boinvit/booking-service/pkg/ptr"
)

func TestBusinessHours_ForDate(t *testing.T) {
	hours := BusinessHours{
		"monday": {Open: "09:00", Close: "17:00"},
		"friday": {Open: "10:00", Close: "14:00"},
	}

	monday := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC) // a Monday
	day, ok := hours.ForDate(monday)
	require.True(t, ok)
	assert.Equal(t, "09:00", day.Open.String())
	assert.Equal(t, "17:00", day.Close.String())

	sunday := time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)
	_, ok = hours.ForDate(sunday)
	assert.False(t, ok)
}

func TestBusinessHours_Validate(t *testing.T) {
	valid := BusinessHours{"tuesday": {Open: "08:30", Close: "18:00"}}
	assert.NoError(t, valid.Validate())

	badDay := BusinessHours{"someday": {Open: "08:30", Close: "18:00"}}
	assert.Error(t, badDay.Validate())

	badTime := BusinessHours{"tuesday": {Open: "8am", Close: "18:00"}}
	assert.Error(t, badTime.Validate())

	inverted := BusinessHours{"tuesday": {Open: "18:00", Close: "08:30"}}
	assert.Error(t, inverted.Validate())
}

func TestBusinessHours_ScanRoundTrip(t *testing.T) {
	hours := BusinessHours{"wednesday": {Open: "09:00", Close: "12:00"}}

	raw, err := hours.Value()
	require.NoError(t, err)

	var scanned BusinessHours
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, hours, scanned)
}

func TestBusiness_FeePercent(t *testing.T) {
	b := &Business{}
	assert.Equal(t, 7.5, b.FeePercent(7.5))

	b.PaymentConfig.PlatformFeePercent = ptr.Ptr(5.0)
	assert.Equal(t, 5.0, b.FeePercent(7.5))
}

func TestBusiness_SlotInterval(t *testing.T) {
	b := &Business{}
	assert.Equal(t, DefaultSlotIntervalMinutes, b.SlotInterval())

	b.SlotIntervalMinutes = 15
	assert.Equal(t, 15, b.SlotInterval())
}

func TestPaymentConfig_HasSubaccount(t *testing.T) {
	assert.False(t, PaymentConfig{}.HasSubaccount())
	assert.True(t, PaymentConfig{SubaccountCode: "ACCT_x2kje"}.HasSubaccount())
}
