package models

import (
	"errors"
	"time"
)

type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// MealTypeOrder is the display order for a day's log.
var MealTypeOrder = []MealType{Breakfast, Lunch, Dinner, Snack}

func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// One logged meal instance. Date is the partition key the log file is
// grouped by; it is derived from Timestamp at creation and only changes
// together with it. Records carry no durable id: within a session a record
// is addressed by its position in the day's list.
type MealRecord struct {
	Timestamp time.Time `json:"datetime"`
	Date      string    `json:"date"` // YYYY-MM-DD
	MealType  MealType  `json:"meal_type"`
	Name      string    `json:"meal"`
	Servings  float64   `json:"servings"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
}

var (
	ErrEmptyMealName   = errors.New("meal name must not be empty")
	ErrInvalidServings = errors.New("servings must be positive")
	ErrNegativeMacro   = errors.New("calories, protein, carbs and fat must not be negative")
	ErrInvalidMealType = errors.New("meal type must be Breakfast, Lunch, Dinner or Snack")
)

func (r MealRecord) Validate() error {
	if r.Name == "" {
		return ErrEmptyMealName
	}
	if !r.MealType.Valid() {
		return ErrInvalidMealType
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if r.Calories < 0 || r.Protein < 0 || r.Carbs < 0 || r.Fat < 0 {
		return ErrNegativeMacro
	}
	return nil
}

// Rescale changes the servings count and scales the four macro fields
// proportionally, keeping the per-serving values intact.
func (r *MealRecord) Rescale(servings float64) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	factor := servings / r.Servings
	r.Servings = servings
	r.Calories *= factor
	r.Protein *= factor
	r.Carbs *= factor
	r.Fat *= factor
	return nil
}
