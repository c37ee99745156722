package models

type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
)

// Categories is the iteration order used by the recommendation planners.
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner}

// A catalog entry from the USDA dataset: one canonical food with macros
// averaged per serving across every raw row that normalized to the same
// display name. Built once at startup, read-only afterwards.
type CatalogEntry struct {
	DisplayName string   `json:"display_name"`
	Category    Category `json:"category"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
}
