package util

import (
	"fmt"
	"regexp"
	"time"
)

// 100 million in cents; anything above is a typo, not a budget.
const maxAmountCent = int64(10_000_000 * 100)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

// ValidateAmountCent checks a monetary amount in cents (must be positive
// and below the sanity cap).
func ValidateAmountCent(cent int64) error {
	if cent <= 0 {
		return fmt.Errorf("amount must be positive, got %d", cent)
	}
	if cent >= maxAmountCent {
		return fmt.Errorf("amount too large, got %d", cent)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateCategory checks a free-text category label.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len(category) > 100 {
		return fmt.Errorf("category too long, max 100 characters")
	}
	return nil
}

// ValidateUsername checks the registration username rule: 3-32 chars,
// letters, digits and underscore only.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username must be 3-32 letters, digits or underscores")
	}
	return nil
}
