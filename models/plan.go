package models

// PlanItem is one recommended entry, tagged with the category slot it fills.
type PlanItem struct {
	Category Category     `json:"category"`
	Entry    CatalogEntry `json:"entry"`
}

// MealPlan is the output of one recommendation run. Skipped lists
// per-category diagnostics for slots with no candidates; a skipped
// category never aborts the rest of the plan.
type MealPlan struct {
	Goal          string     `json:"goal"`
	Items         []PlanItem `json:"items"`
	TotalCalories float64    `json:"total_calories"`
	Skipped       []string   `json:"skipped,omitempty"`
}

// DailyProgress reports a day's calorie budget against what was logged.
type DailyProgress struct {
	Goal      int     `json:"goal"`
	Consumed  float64 `json:"consumed"`
	Remaining float64 `json:"remaining"`
}
