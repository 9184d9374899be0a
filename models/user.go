package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID         string `gorm:"size:64;uniqueIndex"`
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Birthday       time.Time
	Height         float64 // cm
	Weight         float64 // kg
	DietaryNotes   string
	ProfilePicture string
	ResetToken     string
	ResetTokenExp  time.Time
	Disabled       bool
	Onboarded      bool
}
