package services

import "github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"

// localFoods is the in-memory curated list. Nutrient values are per the
// stated serving, ready for meal logging without conversion.
var localFoods = []NormalizedFood{
	{ID: "local-1", Source: models.SourceLocal, Name: "Banana", Serving: "1 medium (118g)", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, Sugar: 14.4, Sodium: 0.001},
	{ID: "local-2", Source: models.SourceLocal, Name: "Apple", Serving: "1 medium (182g)", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, Sugar: 19, Sodium: 0.002},
	{ID: "local-3", Source: models.SourceLocal, Name: "Orange", Serving: "1 medium (131g)", Calories: 62, Protein: 1.2, Carbs: 15.4, Fat: 0.2, Fiber: 3.1, Sugar: 12.2},
	{ID: "local-4", Source: models.SourceLocal, Name: "White Rice (cooked)", Serving: "1 cup (158g)", Calories: 205, Protein: 4.3, Carbs: 44.5, Fat: 0.4, Fiber: 0.6, Sugar: 0.1, Sodium: 0.002},
	{ID: "local-5", Source: models.SourceLocal, Name: "Chapati", Serving: "1 piece (40g)", Calories: 120, Protein: 3.1, Carbs: 18, Fat: 3.7, Fiber: 1.9, Sugar: 0.4, Sodium: 0.19},
	{ID: "local-6", Source: models.SourceLocal, Name: "Dal (cooked)", Serving: "1 cup (198g)", Calories: 230, Protein: 17.9, Carbs: 39.9, Fat: 0.8, Fiber: 15.6, Sugar: 1.8, Sodium: 0.004},
	{ID: "local-7", Source: models.SourceLocal, Name: "Boiled Egg", Serving: "1 large (50g)", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Sugar: 0.6, Sodium: 0.062},
	{ID: "local-8", Source: models.SourceLocal, Name: "Chicken Breast (grilled)", Serving: "100g", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Sodium: 0.074},
	{ID: "local-9", Source: models.SourceLocal, Name: "Paneer", Serving: "100g", Calories: 265, Protein: 18.3, Carbs: 1.2, Fat: 20.8, Sugar: 1.2, Sodium: 0.018},
	{ID: "local-10", Source: models.SourceLocal, Name: "Whole Milk", Serving: "1 cup (244g)", Calories: 149, Protein: 7.7, Carbs: 11.7, Fat: 7.9, Sugar: 12.3, Sodium: 0.105},
	{ID: "local-11", Source: models.SourceLocal, Name: "Curd", Serving: "1 cup (245g)", Calories: 149, Protein: 8.5, Carbs: 11.4, Fat: 8, Sugar: 11.4, Sodium: 0.113},
	{ID: "local-12", Source: models.SourceLocal, Name: "Oats (dry)", Serving: "1/2 cup (40g)", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Fiber: 4, Sugar: 1, Sodium: 0.002},
	{ID: "local-13", Source: models.SourceLocal, Name: "Whole Wheat Bread", Serving: "1 slice (28g)", Calories: 69, Protein: 3.6, Carbs: 11.6, Fat: 0.9, Fiber: 1.9, Sugar: 1.4, Sodium: 0.132},
	{ID: "local-14", Source: models.SourceLocal, Name: "Peanut Butter", Serving: "2 tbsp (32g)", Calories: 188, Protein: 8, Carbs: 6.3, Fat: 16.1, Fiber: 1.9, Sugar: 2.9, Sodium: 0.152},
	{ID: "local-15", Source: models.SourceLocal, Name: "Almonds", Serving: "1 oz (28g)", Calories: 164, Protein: 6, Carbs: 6.1, Fat: 14.2, Fiber: 3.5, Sugar: 1.2},
	{ID: "local-16", Source: models.SourceLocal, Name: "Boiled Potato", Serving: "1 medium (173g)", Calories: 161, Protein: 4.3, Carbs: 36.6, Fat: 0.2, Fiber: 3.8, Sugar: 2, Sodium: 0.017},
	{ID: "local-17", Source: models.SourceLocal, Name: "Tomato", Serving: "1 medium (123g)", Calories: 22, Protein: 1.1, Carbs: 4.8, Fat: 0.2, Fiber: 1.5, Sugar: 3.2, Sodium: 0.006},
	{ID: "local-18", Source: models.SourceLocal, Name: "Spinach (cooked)", Serving: "1 cup (180g)", Calories: 41, Protein: 5.3, Carbs: 6.8, Fat: 0.5, Fiber: 4.3, Sugar: 0.8, Sodium: 0.126},
	{ID: "local-19", Source: models.SourceLocal, Name: "Salmon (cooked)", Serving: "100g", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Sodium: 0.059},
	{ID: "local-20", Source: models.SourceLocal, Name: "Idli", Serving: "1 piece (39g)", Calories: 58, Protein: 1.6, Carbs: 12.3, Fat: 0.1, Fiber: 0.3, Sugar: 0.1, Sodium: 0.065},
	{ID: "local-21", Source: models.SourceLocal, Name: "Plain Dosa", Serving: "1 piece (86g)", Calories: 168, Protein: 3.9, Carbs: 29, Fat: 3.7, Fiber: 0.9, Sugar: 0.1, Sodium: 0.094},
	{ID: "local-22", Source: models.SourceLocal, Name: "Poha", Serving: "1 cup (160g)", Calories: 180, Protein: 3.5, Carbs: 35, Fat: 2.5, Fiber: 1.2, Sugar: 0.5, Sodium: 0.21},
	{ID: "local-23", Source: models.SourceLocal, Name: "Chicken Biryani", Serving: "1 cup (196g)", Calories: 290, Protein: 14, Carbs: 37, Fat: 9, Fiber: 1.5, Sugar: 2, Sodium: 0.58},
	{ID: "local-24", Source: models.SourceLocal, Name: "Samosa", Serving: "1 piece (100g)", Calories: 262, Protein: 3.5, Carbs: 24, Fat: 17, Fiber: 1.9, Sugar: 1.5, Sodium: 0.42},
}

// popularFoodIDs picks the default list shown for an empty search query.
var popularFoodIDs = []string{
	"local-1", "local-2", "local-5", "local-6", "local-4", "local-7", "local-10", "local-12",
}

// PopularFoods returns the fixed fallback list for empty queries, so the UI
// always has something to show.
func PopularFoods() []NormalizedFood {
	byID := make(map[string]NormalizedFood, len(localFoods))
	for _, f := range localFoods {
		byID[f.ID] = f
	}
	out := make([]NormalizedFood, 0, len(popularFoodIDs))
	for _, id := range popularFoodIDs {
		if f, ok := byID[id]; ok {
			out = append(out, f)
		}
	}
	return out
}
