// Package stats holds the derived statistics of the read-model
// contract: remaining balance, clamped savings rate and the calendar
// month keys used to partition income, budgets and the trend window.
package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthKeyLayout is the month-period partition key format.
const MonthKeyLayout = "2006-01"

// MonthKey returns the "YYYY-MM" partition key for t.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// TrendWindowStart returns the start of the trailing n-calendar-month
// window ending at now's month, inclusive. n=6 with now in June yields
// January 1st.
func TrendWindowStart(now time.Time, n int) time.Time {
	if n < 1 {
		n = 1
	}
	return MonthStart(now).AddDate(0, -(n - 1), 0)
}

// Remaining is income minus spend, in cents. May be negative.
func Remaining(incomeCent, spentCent int64) int64 {
	return incomeCent - spentCent
}

// SavingsRate returns remaining/income as a percentage with one decimal
// place. Zero when income is zero; floored at zero when spending
// exceeds income (the displayed rate is never negative).
func SavingsRate(incomeCent, spentCent int64) float64 {
	if incomeCent <= 0 {
		return 0
	}
	remaining := decimal.NewFromInt(incomeCent - spentCent)
	rate := remaining.
		Div(decimal.NewFromInt(incomeCent)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	if rate.IsNegative() {
		return 0
	}
	f, _ := rate.Float64()
	return f
}
