package fincalc

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidPeriods   = errors.New("number of periods must be a positive integer")
	ErrNegativeRate     = errors.New("interest rate must not be negative")
)

// MonthlyPayment calculates the fixed monthly payment for a loan.
// rate is the monthly interest rate in percent (e.g. 2.5 for 2.5% per month).
//
// With zero interest the principal is split evenly across the periods.
// Otherwise the standard amortized-loan formula applies:
//
//	payment = P * (r * (1+r)^n) / ((1+r)^n - 1)   where r = rate / 100
//
// No rounding is applied here; currency formatting happens at display time.
func MonthlyPayment(principal decimal.Decimal, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidPrincipal
	}
	if periods <= 0 {
		return decimal.Zero, ErrInvalidPeriods
	}
	if rate.IsNegative() {
		return decimal.Zero, ErrNegativeRate
	}

	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(periods))), nil
	}

	// The power term is computed in float64; decimal has no native Pow for
	// fractional bases at this precision.
	r := rate.InexactFloat64() / 100.0
	factor := math.Pow(1+r, float64(periods))
	payment := principal.InexactFloat64() * (r * factor) / (factor - 1)

	return decimal.NewFromFloat(payment), nil
}

// AddMonths advances a date by n calendar months, letting the day of month
// roll over the way time.AddDate normalizes (Jan 31 + 1 month = Mar 2/3).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// TruncateToDay strips the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
