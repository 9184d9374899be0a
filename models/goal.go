package models

import (
	"gorm.io/gorm"
)

// NutritionGoal holds each user's daily nutrient-intake targets.
type NutritionGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // e.g. 2200 kcal
	Protein  float64 // e.g. 120 g
	Carbs    float64 // e.g. 275 g
	Fat      float64 // e.g. 70 g
	Fiber    float64 // e.g. 30 g
	Sugar    float64 // e.g. 50 g
	Sodium   float64 // e.g. 2.3 g
}
