package models

import "time"

// Budget is a per-category spending limit for one calendar month.
// One row per (user, category, month); upserts overwrite the amount.
type Budget struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_budget_user_cat_month"`
	Category   string `gorm:"size:100;not null;uniqueIndex:idx_budget_user_cat_month"`
	AmountCent int64  `gorm:"not null"`
	MonthYear  string `gorm:"size:7;not null;uniqueIndex:idx_budget_user_cat_month"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
