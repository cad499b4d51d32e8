package models

import "time"

// Goal is a savings target. Name is unique per owner; CurrentCent is
// incremented by saving contributions and starts at zero.
type Goal struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_goal_user_name"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_goal_user_name"`
	TargetCent  int64     `gorm:"not null"`
	CurrentCent int64     `gorm:"not null;default:0"`
	Deadline    time.Time `gorm:"not null"`
	CreatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
