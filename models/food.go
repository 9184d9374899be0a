package models

import (
	"time"

	"gorm.io/gorm"
)

// Food sources. A food record always carries the source it was resolved from.
const (
	SourceLocal    = "local"
	SourceDatabase = "database"
	SourceRemote   = "openfoodfacts"
	SourceCustom   = "custom"
)

// FoodFreshnessWindow is how long a remote-sourced record is trusted before a
// search hit triggers a refetch-and-replace.
const FoodFreshnessWindow = 7 * 24 * time.Hour

// Food is a cached food record. Nutrient values are stored per 100 g;
// conversion to per-serving happens at search time.
type Food struct {
	gorm.Model
	ExternalID string `gorm:"size:64;uniqueIndex:idx_foods_external_source;not null"`
	Source     string `gorm:"size:24;uniqueIndex:idx_foods_external_source;not null"`
	Name       string `gorm:"size:255;not null;index"`
	Brand      string `gorm:"size:255"`
	Barcode    string `gorm:"size:50"`
	ImageURL   string `gorm:"size:500"`

	// per 100 g
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64 // grams

	ServingSize    string  `gorm:"size:100"` // e.g. "1 medium (118g)"
	ServingWeightG float64 `gorm:"default:100"`

	CreatedBy   *uint // set for custom foods only
	LastFetched time.Time
}

func (Food) TableName() string {
	return "foods"
}

// IsStale reports whether the record is older than the freshness window.
// Stale records are refreshed opportunistically on the next search hit, they
// are never a read failure.
func (f *Food) IsStale() bool {
	return time.Since(f.LastFetched) > FoodFreshnessWindow
}
