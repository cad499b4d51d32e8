package handler

import (
	"encoding/json"

	"github.com/chandu2812/budget-plan/internal/money"
)

// Amount is a request money field. Decimal strings are the convention,
// but a bare JSON number is also accepted for older clients.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

// Cent converts the field to integer cents.
func (a Amount) Cent() (int64, error) {
	return money.ParseToCent(string(a))
}
