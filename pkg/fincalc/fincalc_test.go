package fincalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		periods   int
		expected  decimal.Decimal
		wantErr   error
	}{
		{
			name:      "zero interest splits evenly",
			principal: decimal.NewFromInt(1200),
			rate:      decimal.Zero,
			periods:   12,
			expected:  decimal.NewFromInt(100),
		},
		{
			name:      "zero interest uneven split",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.Zero,
			periods:   3,
			expected:  decimal.NewFromFloat(333.3333333333333333),
		},
		{
			name:      "zero principal rejected",
			principal: decimal.Zero,
			rate:      decimal.NewFromInt(2),
			periods:   12,
			wantErr:   ErrInvalidPrincipal,
		},
		{
			name:      "zero periods rejected",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromInt(2),
			periods:   0,
			wantErr:   ErrInvalidPeriods,
		},
		{
			name:      "negative rate rejected",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromInt(-1),
			periods:   12,
			wantErr:   ErrNegativeRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthlyPayment(tt.principal, tt.rate, tt.periods)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Sub(tt.expected).Abs().LessThan(decimal.NewFromFloat(0.0001)),
				"expected %v, got %v", tt.expected, result)
		})
	}
}

func TestMonthlyPaymentChargesInterest(t *testing.T) {
	// With a positive rate the sum of all payments must exceed the principal.
	rates := []decimal.Decimal{
		decimal.NewFromFloat(0.5),
		decimal.NewFromInt(1),
		decimal.NewFromFloat(2.5),
		decimal.NewFromInt(10),
	}

	principal := decimal.NewFromInt(10000)
	for _, rate := range rates {
		payment, err := MonthlyPayment(principal, rate, 24)
		require.NoError(t, err)

		total := payment.Mul(decimal.NewFromInt(24))
		assert.True(t, total.GreaterThan(principal),
			"rate %v: total %v should exceed principal %v", rate, total, principal)
	}
}

func TestMonthlyPaymentKnownValue(t *testing.T) {
	// 10000 at 2% per month over 12 months: the textbook result is 945.60
	// to two decimal places.
	payment, err := MonthlyPayment(decimal.NewFromInt(10000), decimal.NewFromInt(2), 12)
	require.NoError(t, err)
	assert.Equal(t, "945.60", payment.Round(2).StringFixed(2))
}

func TestAddMonths(t *testing.T) {
	base := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), AddMonths(base, 1))
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), AddMonths(base, 12))

	// Day-of-month rolls over per time.AddDate normalization.
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 1))
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2024, time.June, 3, 17, 45, 12, 999, time.Local)
	got := TruncateToDay(ts)

	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local), got)
	assert.Equal(t, time.Local, got.Location())
}
