// Package money converts between wire-format decimal amounts and the
// integer cents stored in the database.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var centFactor = decimal.NewFromInt(100)

// ParseToCent parses a decimal amount string ("120", "120.5", "0.01")
// into cents. Sub-cent digits are rejected rather than rounded away.
func ParseToCent(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents := d.Mul(centFactor)
	if !cents.IsInteger() {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// FormatCent renders cents as a plain decimal string with two places,
// e.g. 7000 -> "70.00".
func FormatCent(cent int64) string {
	return decimal.NewFromInt(cent).Div(centFactor).StringFixed(2)
}

// CentToFloat returns the float value of a cent amount, for JSON
// payloads the original clients read as numbers.
func CentToFloat(cent int64) float64 {
	f, _ := decimal.NewFromInt(cent).Div(centFactor).Float64()
	return f
}
