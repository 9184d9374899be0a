package services

import (
	"errors"
	"testing"
	"time"
)

func bananaFood() NormalizedFood {
	return NormalizedFood{
		ID: "local-1", Source: "local", Name: "Banana",
		Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4,
		Fiber: 3.1, Sugar: 14.4, Sodium: 0.001,
		Serving: "1 medium (118g)",
	}
}

func newMealService(t *testing.T) (*MealService, func()) {
	t.Helper()
	db, cleanup := setupTestDB(t)
	foods := NewFoodService(db, &fakeRemote{})
	return NewMealService(db, foods), cleanup
}

func TestLogMealScalesAndRounds(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	entry, err := svc.LogMeal(1, LogMealInput{
		Food:        bananaFood(),
		MealType:    "breakfast",
		ServingSize: 2,
	})
	if err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}

	if entry.Calories != 210 {
		t.Fatalf("expected 210 calories for two bananas, got %v", entry.Calories)
	}
	if entry.Protein != 2.6 || entry.Carbs != 54 || entry.Fat != 0.8 {
		t.Fatalf("macro scaling wrong: protein=%v carbs=%v fat=%v", entry.Protein, entry.Carbs, entry.Fat)
	}
	if entry.Sodium != 0.002 {
		t.Fatalf("sodium must round to 3 decimals, got %v", entry.Sodium)
	}
	if entry.ServingUnit != "1 medium (118g)" {
		t.Fatalf("missing unit must default to the food's serving, got %q", entry.ServingUnit)
	}
	if entry.ISTDate == "" {
		t.Fatal("entry must carry its derived civil date")
	}
}

func TestLogMealFractionalServingRounds(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	entry, err := svc.LogMeal(1, LogMealInput{
		Food:        bananaFood(),
		MealType:    "snack",
		ServingSize: 1.5,
	})
	if err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}
	// 105 * 1.5 = 157.5, rounds to 158; 1.3 * 1.5 = 1.95 rounds to 2.
	if entry.Calories != 158 {
		t.Fatalf("expected 158 calories, got %v", entry.Calories)
	}
	if entry.Protein != 2 {
		t.Fatalf("expected protein 2, got %v", entry.Protein)
	}
}

func TestLogMealValidation(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	cases := []struct {
		name  string
		in    LogMealInput
		field string
	}{
		{"zero serving", LogMealInput{Food: bananaFood(), MealType: "lunch"}, "serving_size"},
		{"negative serving", LogMealInput{Food: bananaFood(), MealType: "lunch", ServingSize: -1}, "serving_size"},
		{"bad meal type", LogMealInput{Food: bananaFood(), MealType: "elevenses", ServingSize: 1}, "meal_type"},
		{"missing name", LogMealInput{Food: NormalizedFood{}, MealType: "lunch", ServingSize: 1}, "food.name"},
	}
	for _, tc := range cases {
		_, err := svc.LogMeal(1, tc.in)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tc.field {
			t.Fatalf("%s: expected %s validation error, got %v", tc.name, tc.field, err)
		}
	}
}

func TestLogMealPersistsUnsavedCustomFood(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	entry, err := svc.LogMeal(3, LogMealInput{
		Food: NormalizedFood{
			Source: "custom", Name: "Office Canteen Thali",
			Calories: 650, Protein: 22, Carbs: 90, Fat: 20,
		},
		MealType:    "lunch",
		ServingSize: 1,
	})
	if err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}
	if entry.FoodID == "" {
		t.Fatal("custom food must be persisted before the entry references it")
	}
}

func TestCivilDateBucketsInIST(t *testing.T) {
	// 18:45 UTC is 00:15 the next day in IST; 18:15 UTC is still 23:45.
	lateUTC := time.Date(2025, 1, 1, 18, 45, 0, 0, time.UTC)
	earlyUTC := time.Date(2025, 1, 1, 18, 15, 0, 0, time.UTC)

	if got := CivilDate(lateUTC); got != "2025-01-02" {
		t.Fatalf("18:45 UTC must bucket to the next IST day, got %q", got)
	}
	if got := CivilDate(earlyUTC); got != "2025-01-01" {
		t.Fatalf("18:15 UTC must stay on the same IST day, got %q", got)
	}
}

func TestEntriesForDayGroupsByISTDate(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	log := func(at time.Time) {
		t.Helper()
		if _, err := svc.LogMeal(1, LogMealInput{
			Food: bananaFood(), MealType: "snack", ServingSize: 1, LoggedAt: at,
		}); err != nil {
			t.Fatalf("LogMeal returned error: %v", err)
		}
	}
	log(time.Date(2025, 1, 1, 18, 15, 0, 0, time.UTC)) // IST Jan 1
	log(time.Date(2025, 1, 1, 18, 45, 0, 0, time.UTC)) // IST Jan 2
	log(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))   // IST Jan 2

	if got := svc.EntriesForDay(1, "2025-01-01"); len(got) != 1 {
		t.Fatalf("expected 1 entry on Jan 1 IST, got %d", len(got))
	}
	day2 := svc.EntriesForDay(1, "2025-01-02")
	if len(day2) != 2 {
		t.Fatalf("expected 2 entries on Jan 2 IST, got %d", len(day2))
	}
	if !day2[0].LoggedAt.Before(day2[1].LoggedAt) {
		t.Fatal("entries must come back oldest first")
	}
}

func TestEntriesScopedToUser(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "breakfast", ServingSize: 1, LoggedAt: at})
	svc.LogMeal(2, LogMealInput{Food: bananaFood(), MealType: "breakfast", ServingSize: 1, LoggedAt: at})

	if got := svc.EntriesForDay(1, CivilDate(at)); len(got) != 1 {
		t.Fatalf("expected only user 1's entry, got %d", len(got))
	}
}

func TestDailySummaryMatchesEntries(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	at := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	date := CivilDate(at)

	svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "breakfast", ServingSize: 2, LoggedAt: at})
	svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "breakfast", ServingSize: 1, LoggedAt: at.Add(time.Hour)})
	svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "dinner", ServingSize: 1, LoggedAt: at.Add(10 * time.Hour)})

	sum := svc.GetDailySummary(1, date)

	var cals, prot float64
	for _, e := range svc.EntriesForDay(1, date) {
		cals += e.Calories
		prot += e.Protein
	}
	if sum.TotalCalories != round0(cals) {
		t.Fatalf("summary calories %v do not match entry sum %v", sum.TotalCalories, cals)
	}
	if sum.TotalProtein != round1(prot) {
		t.Fatalf("summary protein %v does not match entry sum %v", sum.TotalProtein, prot)
	}
	if sum.MealCount != 3 {
		t.Fatalf("expected meal count 3, got %d", sum.MealCount)
	}
	if sum.MealsByType["breakfast"] != 2 || sum.MealsByType["dinner"] != 1 {
		t.Fatalf("meals by type wrong: %+v", sum.MealsByType)
	}
}

func TestDailySummaryEmptyDay(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	sum := svc.GetDailySummary(1, "2025-06-01")
	if sum.TotalCalories != 0 || sum.MealCount != 0 {
		t.Fatalf("empty day must be all zero, got %+v", sum)
	}
	if sum.Date != "2025-06-01" {
		t.Fatalf("summary must echo the requested date, got %q", sum.Date)
	}
	for _, mt := range []string{"breakfast", "lunch", "dinner", "snack"} {
		if n, ok := sum.MealsByType[mt]; !ok || n != 0 {
			t.Fatalf("meal type %q must be present and zero, got %v (present=%v)", mt, n, ok)
		}
	}
}

func TestWeeklySummarySevenDaysAscending(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	end, err := ParseCivilDate("2025-04-10")
	if err != nil {
		t.Fatalf("ParseCivilDate returned error: %v", err)
	}
	svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "snack", ServingSize: 1, LoggedAt: end})

	week := svc.GetWeeklySummary(1, end)
	if len(week) != 7 {
		t.Fatalf("expected 7 summaries, got %d", len(week))
	}
	if week[0].Date != "2025-04-04" || week[6].Date != "2025-04-10" {
		t.Fatalf("expected 2025-04-04..2025-04-10, got %s..%s", week[0].Date, week[6].Date)
	}
	for i := 1; i < len(week); i++ {
		if week[i].Date <= week[i-1].Date {
			t.Fatalf("dates must ascend: %s then %s", week[i-1].Date, week[i].Date)
		}
	}
	if week[6].MealCount != 1 {
		t.Fatalf("expected the logged meal on the final day, got %d", week[6].MealCount)
	}
}

func TestUpdateEntryRescalesNutrients(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	entry, err := svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "snack", ServingSize: 1})
	if err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}

	size := 2.0
	updated, err := svc.UpdateEntry(1, entry.ID, UpdateEntryInput{ServingSize: &size})
	if err != nil {
		t.Fatalf("UpdateEntry returned error: %v", err)
	}
	if updated.Calories != 210 || updated.Protein != 2.6 {
		t.Fatalf("serving change must rescale nutrients: cal=%v protein=%v", updated.Calories, updated.Protein)
	}

	mt := "dinner"
	updated, err = svc.UpdateEntry(1, entry.ID, UpdateEntryInput{MealType: &mt})
	if err != nil {
		t.Fatalf("UpdateEntry returned error: %v", err)
	}
	if updated.MealType != "dinner" {
		t.Fatalf("expected meal type dinner, got %q", updated.MealType)
	}
	if updated.Calories != 210 {
		t.Fatalf("meal type change alone must not touch nutrients, got %v", updated.Calories)
	}
}

func TestUpdateEntryValidation(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	entry, _ := svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "snack", ServingSize: 1})

	bad := 0.0
	if _, err := svc.UpdateEntry(1, entry.ID, UpdateEntryInput{ServingSize: &bad}); err == nil {
		t.Fatal("expected rejection of zero serving size")
	}

	mt := "brunch"
	if _, err := svc.UpdateEntry(1, entry.ID, UpdateEntryInput{MealType: &mt}); err == nil {
		t.Fatal("expected rejection of unknown meal type")
	}

	size := 2.0
	if _, err := svc.UpdateEntry(99, entry.ID, UpdateEntryInput{ServingSize: &size}); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("another user's entry must report not found, got %v", err)
	}
}

func TestDeleteEntryReportsOutcome(t *testing.T) {
	svc, cleanup := newMealService(t)
	defer cleanup()

	entry, _ := svc.LogMeal(1, LogMealInput{Food: bananaFood(), MealType: "snack", ServingSize: 1})

	if !svc.DeleteEntry(1, entry.ID) {
		t.Fatal("first delete must report true")
	}
	if svc.DeleteEntry(1, entry.ID) {
		t.Fatal("second delete must report false")
	}
	if svc.DeleteEntry(1, 424242) {
		t.Fatal("deleting an unknown id must report false")
	}
}
