package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
)

type Goal string

const (
	GoalWeightLoss  Goal = "Weight Loss"
	GoalHighProtein Goal = "High Protein"
	GoalBalanced    Goal = "Balanced Diet"
	GoalCaloriePlan Goal = "Calorie-Based Plan"
)

var ErrUnknownGoal = errors.New("unknown goal")

// FallbackScope controls which categories may fall back to their unfiltered
// entry set when the weight-loss filter leaves nothing. The source app
// shipped both behaviors at different points, so it stays configurable.
type FallbackScope string

const (
	FallbackAllCategories FallbackScope = "all"
	FallbackDinnerOnly    FallbackScope = "dinner"
)

type RecommendationParams struct {
	// Minimum protein per serving for the high-protein goal. Observed
	// values were 10, 20 and 25; 20 is the default.
	HighProteinThreshold float64
	WeightLossFallback   FallbackScope
}

func (p RecommendationParams) withDefaults() RecommendationParams {
	if p.HighProteinThreshold <= 0 {
		p.HighProteinThreshold = 20
	}
	if p.WeightLossFallback == "" {
		p.WeightLossFallback = FallbackAllCategories
	}
	return p
}

// Calorie allowance per category for the calorie-based plan.
var caloriePlanWeights = map[models.Category]float64{
	models.CategoryBreakfast: 0.30,
	models.CategoryLunch:     0.40,
	models.CategoryDinner:    0.30,
}

// RecommendationService turns the catalog plus a named goal into a day's
// meal plan. It reads only the catalog, never the user's log.
type RecommendationService struct {
	catalog *CatalogService
}

func NewRecommendationService(catalog *CatalogService) *RecommendationService {
	return &RecommendationService{catalog: catalog}
}

// Recommend produces a plan for the sampled goals. Categories with no
// candidates are skipped with a diagnostic, never a fatal error. Sampling is
// uniform and unseeded; only the calorie-based plan is deterministic.
func (s *RecommendationService) Recommend(goal Goal, params RecommendationParams) (*models.MealPlan, error) {
	params = params.withDefaults()
	switch goal {
	case GoalWeightLoss:
		return s.weightLossPlan(params)
	case GoalHighProtein:
		return s.filteredPlan(goal, 1, func(e models.CatalogEntry) bool {
			return e.Protein >= params.HighProteinThreshold
		})
	case GoalBalanced:
		return s.filteredPlan(goal, 1, func(e models.CatalogEntry) bool {
			return e.Calories >= 350 && e.Calories <= 500 &&
				e.Protein >= 15 && e.Protein <= 30 &&
				e.Fat >= 8 && e.Fat <= 15
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
	}
}

func (s *RecommendationService) weightLossPlan(params RecommendationParams) (*models.MealPlan, error) {
	plan := &models.MealPlan{Goal: string(GoalWeightLoss)}
	for _, cat := range models.Categories {
		entries, err := s.catalog.ByCategory(cat)
		if err != nil {
			return nil, err
		}
		filtered := filterEntries(entries, func(e models.CatalogEntry) bool {
			return e.Calories <= 400
		})
		if len(filtered) == 0 && fallbackAllowed(params.WeightLossFallback, cat) {
			filtered = entries
		}
		if len(filtered) == 0 {
			plan.Skipped = append(plan.Skipped, fmt.Sprintf("no %s meals found for this goal", cat))
			continue
		}
		for _, entry := range sampleEntries(filtered, 2) {
			plan.Items = append(plan.Items, models.PlanItem{Category: cat, Entry: entry})
			plan.TotalCalories += entry.Calories
		}
	}
	return plan, nil
}

func (s *RecommendationService) filteredPlan(goal Goal, perCategory int, keep func(models.CatalogEntry) bool) (*models.MealPlan, error) {
	plan := &models.MealPlan{Goal: string(goal)}
	for _, cat := range models.Categories {
		entries, err := s.catalog.ByCategory(cat)
		if err != nil {
			return nil, err
		}
		filtered := filterEntries(entries, keep)
		if len(filtered) == 0 {
			plan.Skipped = append(plan.Skipped, fmt.Sprintf("no %s meals found for this goal", cat))
			continue
		}
		for _, entry := range sampleEntries(filtered, perCategory) {
			plan.Items = append(plan.Items, models.PlanItem{Category: cat, Entry: entry})
			plan.TotalCalories += entry.Calories
		}
	}
	return plan, nil
}

var ErrInvalidTarget = errors.New("calorie target must be positive")

// CaloriePlan splits the daily target across Breakfast (30%), Lunch (40%)
// and Dinner (30%) and picks, per category, the entry closest to its
// allowance. No sampling: the same catalog and target always give the same
// plan and total.
func (s *RecommendationService) CaloriePlan(target float64) (*models.MealPlan, error) {
	if target <= 0 {
		return nil, ErrInvalidTarget
	}
	plan := &models.MealPlan{Goal: string(GoalCaloriePlan)}
	for _, cat := range models.Categories {
		entries, err := s.catalog.ByCategory(cat)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			plan.Skipped = append(plan.Skipped, fmt.Sprintf("no %s meals available", cat))
			continue
		}
		allowance := target * caloriePlanWeights[cat]
		best := entries[0]
		bestDiff := math.Abs(best.Calories - allowance)
		for _, entry := range entries[1:] {
			if diff := math.Abs(entry.Calories - allowance); diff < bestDiff {
				best, bestDiff = entry, diff
			}
		}
		plan.Items = append(plan.Items, models.PlanItem{Category: cat, Entry: best})
		plan.TotalCalories += best.Calories
	}
	return plan, nil
}

func fallbackAllowed(scope FallbackScope, cat models.Category) bool {
	return scope == FallbackAllCategories ||
		(scope == FallbackDinnerOnly && cat == models.CategoryDinner)
}

func filterEntries(entries []models.CatalogEntry, keep func(models.CatalogEntry) bool) []models.CatalogEntry {
	var out []models.CatalogEntry
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// sampleEntries picks up to n entries uniformly without replacement.
func sampleEntries(entries []models.CatalogEntry, n int) []models.CatalogEntry {
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]models.CatalogEntry, 0, n)
	for _, i := range rand.Perm(len(entries))[:n] {
		out = append(out, entries[i])
	}
	return out
}
