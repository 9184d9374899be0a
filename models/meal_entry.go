package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types form a closed set.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes in display order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ValidMealType(t string) bool {
	for _, m := range MealTypes {
		if t == m {
			return true
		}
	}
	return false
}

// MealEntry is one logged quantity of a food. Food descriptives are a snapshot
// taken at logging time; later edits to the food record do not touch entries.
// Nutrient fields are already scaled by ServingSize.
type MealEntry struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	FoodID     string `gorm:"size:64;not null"`
	FoodName   string `gorm:"size:255;not null"`
	FoodBrand  string `gorm:"size:255"`
	FoodSource string `gorm:"size:24"`
	FoodImage  string `gorm:"size:500"`

	MealType    string  `gorm:"size:16;not null"`
	ServingSize float64 `gorm:"not null"` // multiplier, > 0
	ServingUnit string  `gorm:"size:100"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64 // grams

	LoggedAt time.Time `gorm:"index;not null"`
	// ISTDate is the civil date of LoggedAt in the fixed app timezone and is
	// the only grouping key for "day". Entries are never queried by UTC
	// day boundaries.
	ISTDate string `gorm:"size:10;index;not null"`
}

func (MealEntry) TableName() string {
	return "meal_entries"
}
