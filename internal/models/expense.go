package models

import "time"

// Expense is a single spending record. Rows are append-only: never
// updated or deleted once written. Timestamp is assigned by the server.
type Expense struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Category    string    `gorm:"size:100;not null"`
	AmountCent  int64     `gorm:"not null"`
	Description string    `gorm:"size:255"`
	Timestamp   time.Time `gorm:"index;not null"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
