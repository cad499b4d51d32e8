package models

import "time"

// Notification is an advisory alert. Only the overspend check writes
// rows; there is no endpoint to flip IsRead.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Message   string `gorm:"type:text;not null"`
	Type      string `gorm:"size:50;not null"` // e.g. danger
	IsRead    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
