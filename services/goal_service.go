package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
)

type GoalService struct {
	db    *gorm.DB
	meals *MealService
}

func NewGoalService(db *gorm.DB, meals *MealService) *GoalService {
	return &GoalService{db: db, meals: meals}
}

type GoalInput struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func (in *GoalInput) validate() error {
	for field, v := range map[string]float64{
		"calories": in.Calories,
		"protein":  in.Protein,
		"carbs":    in.Carbs,
		"fat":      in.Fat,
		"fiber":    in.Fiber,
		"sugar":    in.Sugar,
		"sodium":   in.Sodium,
	} {
		if v < 0 {
			return invalidField(field, "must not be negative")
		}
	}
	return nil
}

func (s *GoalService) Upsert(userID uint, in GoalInput) (*models.NutritionGoal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	goal.UserID = userID
	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.Fiber = in.Fiber
	goal.Sugar = in.Sugar
	goal.Sodium = in.Sodium

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, fmt.Errorf("failed to save goals: %w", err)
	}
	return &goal, nil
}

type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// GoalsWithProgress pairs the user's targets with the given day's summary.
// A user without saved goals gets zero targets, not an error.
func (s *GoalService) GoalsWithProgress(userID uint, date string) (*models.NutritionGoal, map[string]NutrientProgress) {
	var goal models.NutritionGoal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		goal = models.NutritionGoal{UserID: userID}
	}

	sum := s.meals.GetDailySummary(userID, date)

	progress := map[string]NutrientProgress{
		"calories": {Consumed: sum.TotalCalories, Goal: goal.Calories, Percent: goalPct(sum.TotalCalories, goal.Calories)},
		"protein":  {Consumed: sum.TotalProtein, Goal: goal.Protein, Percent: goalPct(sum.TotalProtein, goal.Protein)},
		"carbs":    {Consumed: sum.TotalCarbs, Goal: goal.Carbs, Percent: goalPct(sum.TotalCarbs, goal.Carbs)},
		"fat":      {Consumed: sum.TotalFat, Goal: goal.Fat, Percent: goalPct(sum.TotalFat, goal.Fat)},
		"fiber":    {Consumed: sum.TotalFiber, Goal: goal.Fiber, Percent: goalPct(sum.TotalFiber, goal.Fiber)},
		"sugar":    {Consumed: sum.TotalSugar, Goal: goal.Sugar, Percent: goalPct(sum.TotalSugar, goal.Sugar)},
		"sodium":   {Consumed: sum.TotalSodium, Goal: goal.Sodium, Percent: goalPct(sum.TotalSodium, goal.Sodium)},
	}
	return &goal, progress
}

// goalPct is the consumed/target ratio capped at 1.
func goalPct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}
