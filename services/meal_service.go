package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
)

// Days are grouped in Indian Standard Time regardless of where the client
// connects from. A fixed offset keeps the bucketing stable year-round.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// CivilDate converts a timestamp to its IST calendar date, the sole grouping
// key for "what day did this meal belong to".
func CivilDate(t time.Time) string {
	return t.In(istZone).Format("2006-01-02")
}

// ParseCivilDate parses a YYYY-MM-DD string as an IST date.
func ParseCivilDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, istZone)
}

type MealService struct {
	db    *gorm.DB
	foods *FoodService
}

func NewMealService(db *gorm.DB, foods *FoodService) *MealService {
	return &MealService{db: db, foods: foods}
}

type LogMealInput struct {
	Food        NormalizedFood `json:"food"`
	MealType    string         `json:"meal_type"`
	ServingSize float64        `json:"serving_size"`
	ServingUnit string         `json:"serving_unit"`
	LoggedAt    time.Time      `json:"logged_at"` // zero means now
}

// LogMeal validates, scales the food's per-serving nutrients by the serving
// multiplier and persists the entry. A custom food without a persisted
// identity is stored first so the entry can reference it.
func (s *MealService) LogMeal(userID uint, in LogMealInput) (*models.MealEntry, error) {
	if in.ServingSize <= 0 {
		return nil, invalidField("serving_size", "must be greater than zero")
	}
	if !models.ValidMealType(in.MealType) {
		return nil, invalidField("meal_type", "must be one of breakfast, lunch, dinner, snack")
	}
	if strings.TrimSpace(in.Food.Name) == "" {
		return nil, invalidField("food.name", "is required")
	}

	food := in.Food
	if food.Source == models.SourceCustom && food.ID == "" {
		created, err := s.foods.CreateCustomFood(userID, CustomFoodInput{
			Name:        food.Name,
			Brand:       food.Brand,
			ServingSize: food.Serving,
			Calories:    food.Calories,
			Protein:     food.Protein,
			Carbs:       food.Carbs,
			Fat:         food.Fat,
			Fiber:       food.Fiber,
			Sugar:       food.Sugar,
			Sodium:      food.Sodium,
		})
		if err != nil {
			return nil, err
		}
		food.ID = created.ID
	}

	at := in.LoggedAt
	if at.IsZero() {
		at = time.Now()
	}

	unit := strings.TrimSpace(in.ServingUnit)
	if unit == "" {
		unit = food.Serving
	}

	entry := &models.MealEntry{
		UserID:      userID,
		FoodID:      food.ID,
		FoodName:    food.Name,
		FoodBrand:   food.Brand,
		FoodSource:  food.Source,
		FoodImage:   food.Image,
		MealType:    in.MealType,
		ServingSize: in.ServingSize,
		ServingUnit: unit,
		Calories:    round0(food.Calories * in.ServingSize),
		Protein:     round1(food.Protein * in.ServingSize),
		Carbs:       round1(food.Carbs * in.ServingSize),
		Fat:         round1(food.Fat * in.ServingSize),
		Fiber:       round1(food.Fiber * in.ServingSize),
		Sugar:       round1(food.Sugar * in.ServingSize),
		Sodium:      round3(food.Sodium * in.ServingSize),
		LoggedAt:    at,
		ISTDate:     CivilDate(at),
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to save meal entry: %w", err)
	}
	return entry, nil
}

// EntriesForDay returns the user's entries whose derived civil date equals
// date (YYYY-MM-DD), oldest first. Read failures degrade to an empty list.
func (s *MealService) EntriesForDay(userID uint, date string) []models.MealEntry {
	var entries []models.MealEntry
	if err := s.db.
		Where("user_id = ? AND ist_date = ?", userID, date).
		Order("logged_at ASC").
		Find(&entries).Error; err != nil {
		logrus.WithError(err).WithField("date", date).Warn("meal entries read failed")
		return []models.MealEntry{}
	}
	return entries
}

// DailySummary is recomputed in full on every request; nothing is cached or
// incrementally maintained at this data scale.
type DailySummary struct {
	Date          string         `json:"date"`
	TotalCalories float64        `json:"total_calories"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCarbs    float64        `json:"total_carbs"`
	TotalFat      float64        `json:"total_fat"`
	TotalFiber    float64        `json:"total_fiber"`
	TotalSugar    float64        `json:"total_sugar"`
	TotalSodium   float64        `json:"total_sodium"`
	MealCount     int            `json:"meal_count"`
	MealsByType   map[string]int `json:"meals_by_type"`
}

// GetDailySummary folds the day's entries into totals. Zero entries yield a
// well-formed all-zero summary, never a failure.
func (s *MealService) GetDailySummary(userID uint, date string) DailySummary {
	out := DailySummary{
		Date:        date,
		MealsByType: make(map[string]int, len(models.MealTypes)),
	}
	for _, t := range models.MealTypes {
		out.MealsByType[t] = 0
	}

	var cals, prot, carbs, fat, fiber, sugar, sodium float64
	entries := s.EntriesForDay(userID, date)
	for _, e := range entries {
		cals += e.Calories
		prot += e.Protein
		carbs += e.Carbs
		fat += e.Fat
		fiber += e.Fiber
		sugar += e.Sugar
		sodium += e.Sodium
		out.MealsByType[e.MealType]++
	}

	out.TotalCalories = round0(cals)
	out.TotalProtein = round1(prot)
	out.TotalCarbs = round1(carbs)
	out.TotalFat = round1(fat)
	out.TotalFiber = round1(fiber)
	out.TotalSugar = round1(sugar)
	out.TotalSodium = round3(sodium)
	out.MealCount = len(entries)
	return out
}

// GetWeeklySummary returns one summary per calendar day from endDate-6 to
// endDate inclusive, oldest first, each computed independently.
func (s *MealService) GetWeeklySummary(userID uint, endDate time.Time) []DailySummary {
	out := make([]DailySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		d := endDate.AddDate(0, 0, -i)
		out = append(out, s.GetDailySummary(userID, d.In(istZone).Format("2006-01-02")))
	}
	return out
}

// UpdateEntryInput limits edits to serving size, unit and meal type. Nutrient
// fields are never independently editable.
type UpdateEntryInput struct {
	ServingSize *float64 `json:"serving_size"`
	ServingUnit *string  `json:"serving_unit"`
	MealType    *string  `json:"meal_type"`
}

// UpdateEntry edits the permitted fields. A serving-size change recomputes
// the stored scaled nutrients so they stay consistent with the new size.
func (s *MealService) UpdateEntry(userID, entryID uint, in UpdateEntryInput) (*models.MealEntry, error) {
	if in.ServingSize != nil && *in.ServingSize <= 0 {
		return nil, invalidField("serving_size", "must be greater than zero")
	}
	if in.MealType != nil && !models.ValidMealType(*in.MealType) {
		return nil, invalidField("meal_type", "must be one of breakfast, lunch, dinner, snack")
	}

	var entry models.MealEntry
	if err := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load meal entry: %w", err)
	}

	if in.ServingSize != nil && *in.ServingSize != entry.ServingSize {
		// Rescale from the entry's own snapshot: the per-serving base is the
		// stored value divided by the previous multiplier.
		factor := *in.ServingSize / entry.ServingSize
		entry.Calories = round0(entry.Calories * factor)
		entry.Protein = round1(entry.Protein * factor)
		entry.Carbs = round1(entry.Carbs * factor)
		entry.Fat = round1(entry.Fat * factor)
		entry.Fiber = round1(entry.Fiber * factor)
		entry.Sugar = round1(entry.Sugar * factor)
		entry.Sodium = round3(entry.Sodium * factor)
		entry.ServingSize = *in.ServingSize
	}
	if in.ServingUnit != nil {
		entry.ServingUnit = *in.ServingUnit
	}
	if in.MealType != nil {
		entry.MealType = *in.MealType
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to update meal entry: %w", err)
	}
	return &entry, nil
}

// DeleteEntry removes the entry and reports whether a row was deleted.
// Deleting an already-deleted entry returns false, which callers treat as
// non-fatal.
func (s *MealService) DeleteEntry(userID, entryID uint) bool {
	res := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.MealEntry{})
	if res.Error != nil {
		logrus.WithError(res.Error).WithField("entry_id", entryID).Warn("meal entry delete failed")
		return false
	}
	return res.RowsAffected > 0
}
