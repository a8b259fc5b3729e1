package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		percent      float64
		wantFee      float64
		wantBusiness float64
	}{
		{
			name:         "standard platform fee",
			amount:       1000,
			percent:      7.5,
			wantFee:      75.00,
			wantBusiness: 925.00,
		},
		{
			name:         "zero amount",
			amount:       0,
			percent:      7.5,
			wantFee:      0,
			wantBusiness: 0,
		},
		{
			name:         "rounding to two decimals",
			amount:       999.99,
			percent:      3,
			wantFee:      30.00,
			wantBusiness: 969.99,
		},
		{
			name:         "five percent",
			amount:       1500.50,
			percent:      5,
			wantFee:      75.03,
			wantBusiness: 1425.47,
		},
		{
			name:         "zero percent keeps everything with the business",
			amount:       250,
			percent:      0,
			wantFee:      0,
			wantBusiness: 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := ComputeSplit(tt.amount, tt.percent)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFee, split.PlatformFee)
			assert.Equal(t, tt.wantBusiness, split.BusinessAmount)
			assert.InDelta(t, split.Gross, split.PlatformFee+split.BusinessAmount, 0.001)
		})
	}
}

func TestComputeSplit_NegativeAmount(t *testing.T) {
	_, err := ComputeSplit(-10, 7.5)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestComputeSplit_InvalidPercent(t *testing.T) {
	_, err := ComputeSplit(100, 101)
	assert.ErrorIs(t, err, ErrInvalidPercent)

	_, err = ComputeSplit(100, -1)
	assert.ErrorIs(t, err, ErrInvalidPercent)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(100000), MinorUnits(1000))
	assert.Equal(t, int64(150050), MinorUnits(1500.50))
	assert.Equal(t, int64(0), MinorUnits(0))
	assert.Equal(t, int64(1), MinorUnits(0.01))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1500.5, "KES", "KES 1,500.50"},
		{0, "KES", "KES 0.00"},
		{999, "NGN", "NGN 999.00"},
		{1000000, "USD", "USD 1,000,000.00"},
		{123456.78, "KES", "KES 123,456.78"},
		{-2500, "KES", "KES -2,500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.amount, tt.currency))
	}
}
