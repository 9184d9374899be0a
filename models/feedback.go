package models

import (
	"gorm.io/gorm"
)

// Feedback is a message collected by the in-app widget. Rows are always
// persisted; forwarding by email is best-effort and tracked in Delivered.
type Feedback struct {
	gorm.Model
	UserID       uint   `gorm:"index"`
	Category     string `gorm:"size:32"` // "bug" | "idea" | "other"
	Message      string `gorm:"type:text;not null"`
	Page         string `gorm:"size:255"`
	ContactEmail string `gorm:"size:255"`
	Delivered    bool
}
