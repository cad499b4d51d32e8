package models

import "time"

// Income holds the declared income for one user and one calendar month.
// MonthYear is the partition key in "YYYY-MM" form; the composite unique
// index makes income a per-month upsert, last writer wins.
// Amounts are stored in cents to avoid float drift.
type Income struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_income_user_month"`
	AmountCent int64  `gorm:"not null"`
	MonthYear  string `gorm:"size:7;not null;uniqueIndex:idx_income_user_month"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
