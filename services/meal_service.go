package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

var (
	ErrRecordNotFound = errors.New("no meal at that position for this date")
	ErrNotInCatalog   = errors.New("meal not found in the catalog")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// MealService is the add/edit/delete cycle over a user's log. Records are
// addressed by position within a date partition, matching how the log file
// round-trips them; edits and deletes rewrite the whole day.
type MealService struct {
	logs    *storage.LogStore
	catalog *CatalogService
	now     func() time.Time
}

func NewMealService(logs *storage.LogStore, catalog *CatalogService) *MealService {
	return &MealService{logs: logs, catalog: catalog, now: time.Now}
}

type AddMealRequest struct {
	Date     string          `json:"date"`
	MealType models.MealType `json:"meal_type"`
	Name     string          `json:"meal"`
	Servings float64         `json:"servings"`

	// FromCatalog fills macros as per-serving values times servings;
	// otherwise the caller supplies them directly.
	FromCatalog bool    `json:"from_catalog"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// AddMeal validates, builds the record and appends it. Nothing is written
// when validation fails.
func (s *MealService) AddMeal(username string, req AddMealRequest) (models.MealRecord, error) {
	now := s.now()
	date := req.Date
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return models.MealRecord{}, ErrInvalidDate
	}
	if req.Servings == 0 {
		req.Servings = 1
	}

	rec := models.MealRecord{
		Timestamp: now,
		Date:      date,
		MealType:  req.MealType,
		Name:      req.Name,
		Servings:  req.Servings,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fat:       req.Fat,
	}

	if req.FromCatalog {
		entry, ok, err := s.catalog.Lookup(req.Name)
		if err != nil {
			return models.MealRecord{}, err
		}
		if !ok {
			return models.MealRecord{}, fmt.Errorf("%w: %q", ErrNotInCatalog, req.Name)
		}
		rec.Calories = entry.Calories * req.Servings
		rec.Protein = entry.Protein * req.Servings
		rec.Carbs = entry.Carbs * req.Servings
		rec.Fat = entry.Fat * req.Servings
	}

	if err := rec.Validate(); err != nil {
		return models.MealRecord{}, err
	}
	if err := s.logs.Append(username, rec); err != nil {
		return models.MealRecord{}, err
	}
	return rec, nil
}

// MealGroup is a day's records bucketed by meal type in display order.
type MealGroup struct {
	MealType models.MealType     `json:"meal_type"`
	Records  []models.MealRecord `json:"records"`
}

// Day returns the date's records in file order plus the grouped view.
func (s *MealService) Day(username, date string) ([]models.MealRecord, []MealGroup, error) {
	records, err := s.logs.LoadDate(username, date)
	if err != nil {
		return nil, nil, err
	}
	var groups []MealGroup
	for _, mealType := range models.MealTypeOrder {
		group := MealGroup{MealType: mealType}
		for _, rec := range records {
			if rec.MealType == mealType {
				group.Records = append(group.Records, rec)
			}
		}
		if len(group.Records) > 0 {
			groups = append(groups, group)
		}
	}
	return records, groups, nil
}

// UpdateServings rescales the record at the given position within the date
// partition: all four macros scale by newServings/oldServings.
func (s *MealService) UpdateServings(username, date string, index int, servings float64) (models.MealRecord, error) {
	day, err := s.logs.LoadDate(username, date)
	if err != nil {
		return models.MealRecord{}, err
	}
	if index < 0 || index >= len(day) {
		return models.MealRecord{}, ErrRecordNotFound
	}
	if err := day[index].Rescale(servings); err != nil {
		return models.MealRecord{}, err
	}
	if err := s.logs.ReplaceDate(username, date, day); err != nil {
		return models.MealRecord{}, err
	}
	return day[index], nil
}

// DeleteMeal removes the record at the given position within the date
// partition. Other dates are untouched.
func (s *MealService) DeleteMeal(username, date string, index int) error {
	day, err := s.logs.LoadDate(username, date)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(day) {
		return ErrRecordNotFound
	}
	day = append(day[:index], day[index+1:]...)
	return s.logs.ReplaceDate(username, date, day)
}
