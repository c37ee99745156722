package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

func newTestMealService(t *testing.T) *MealService {
	t.Helper()
	logs := storage.NewLogStore(t.TempDir(), discardLogger())
	catalog := testCatalog(
		entry("Chicken", models.CategoryDinner, 335, 38, 14),
		entry("Brown Rice", models.CategoryLunch, 216, 5, 2),
	)
	svc := NewMealService(logs, catalog)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestAddMeal_FromCatalogScalesPerServingMacros(t *testing.T) {
	svc := newTestMealService(t)

	rec, err := svc.AddMeal("alice", AddMealRequest{
		Date:        "2025-06-15",
		MealType:    models.Dinner,
		Name:        "Chicken",
		Servings:    2,
		FromCatalog: true,
	})
	require.NoError(t, err)
	require.InDelta(t, 670, rec.Calories, 1e-9)
	require.InDelta(t, 76, rec.Protein, 1e-9)
	require.InDelta(t, 28, rec.Fat, 1e-9)

	records, _, err := svc.Day("alice", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestAddMeal_UnknownCatalogEntryRejected(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AddMeal("alice", AddMealRequest{
		MealType:    models.Lunch,
		Name:        "Unicorn Steak",
		Servings:    1,
		FromCatalog: true,
	})
	require.ErrorIs(t, err, ErrNotInCatalog)
}

func TestAddMeal_ValidationLeavesNoPartialState(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AddMeal("alice", AddMealRequest{
		MealType: models.Lunch,
		Name:     "",
		Servings: 1,
		Calories: 100,
	})
	require.ErrorIs(t, err, models.ErrEmptyMealName)

	_, err = svc.AddMeal("alice", AddMealRequest{
		MealType: models.MealType("Brunch"),
		Name:     "Toast",
		Servings: 1,
	})
	require.ErrorIs(t, err, models.ErrInvalidMealType)

	_, err = svc.AddMeal("alice", AddMealRequest{
		MealType: models.Lunch,
		Name:     "Toast",
		Servings: 1,
		Calories: -5,
	})
	require.ErrorIs(t, err, models.ErrNegativeMacro)

	records, _, err := svc.Day("alice", "2025-06-15")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestAddMeal_DateDefaultsToToday(t *testing.T) {
	svc := newTestMealService(t)

	rec, err := svc.AddMeal("alice", AddMealRequest{
		MealType: models.Breakfast,
		Name:     "Oatmeal",
		Servings: 1,
		Calories: 150, Protein: 5, Carbs: 27, Fat: 3,
	})
	require.NoError(t, err)
	require.Equal(t, "2025-06-15", rec.Date)

	_, err = svc.AddMeal("alice", AddMealRequest{
		Date:     "15/06/2025",
		MealType: models.Breakfast,
		Name:     "Oatmeal",
		Servings: 1,
	})
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateServings_RescaleRoundTrip(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AddMeal("alice", AddMealRequest{
		Date:     "2025-06-15",
		MealType: models.Dinner,
		Name:     "Chicken",
		Servings: 2, Calories: 670, Protein: 76, Carbs: 0, Fat: 28,
	})
	require.NoError(t, err)

	rec, err := svc.UpdateServings("alice", "2025-06-15", 0, 3)
	require.NoError(t, err)
	require.InDelta(t, 1005, rec.Calories, 1e-6)
	require.InDelta(t, 114, rec.Protein, 1e-6)

	rec, err = svc.UpdateServings("alice", "2025-06-15", 0, 2)
	require.NoError(t, err)
	require.InDelta(t, 670, rec.Calories, 1e-6)
	require.InDelta(t, 76, rec.Protein, 1e-6)
	require.InDelta(t, 28, rec.Fat, 1e-6)
}

func TestUpdateServings_BadIndex(t *testing.T) {
	svc := newTestMealService(t)
	_, err := svc.UpdateServings("alice", "2025-06-15", 0, 2)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteMeal_RemovesExactlyOneRecord(t *testing.T) {
	svc := newTestMealService(t)

	add := func(date, name string) {
		_, err := svc.AddMeal("alice", AddMealRequest{
			Date: date, MealType: models.Lunch, Name: name,
			Servings: 1, Calories: 100,
		})
		require.NoError(t, err)
	}
	add("2025-06-14", "Soup")
	add("2025-06-15", "Salad")
	add("2025-06-15", "Bread")

	require.NoError(t, svc.DeleteMeal("alice", "2025-06-15", 0))

	day, _, err := svc.Day("alice", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, day, 1)
	require.Equal(t, "Bread", day[0].Name)

	other, _, err := svc.Day("alice", "2025-06-14")
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.Equal(t, "Soup", other[0].Name)

	require.ErrorIs(t, svc.DeleteMeal("alice", "2025-06-15", 5), ErrRecordNotFound)
}

func TestDay_GroupsByMealTypeInDisplayOrder(t *testing.T) {
	svc := newTestMealService(t)

	add := func(mealType models.MealType, name string) {
		_, err := svc.AddMeal("alice", AddMealRequest{
			Date: "2025-06-15", MealType: mealType, Name: name,
			Servings: 1, Calories: 100,
		})
		require.NoError(t, err)
	}
	add(models.Snack, "Apple")
	add(models.Breakfast, "Oatmeal")
	add(models.Dinner, "Chicken")

	_, groups, err := svc.Day("alice", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, models.Breakfast, groups[0].MealType)
	require.Equal(t, models.Dinner, groups[1].MealType)
	require.Equal(t, models.Snack, groups[2].MealType)
}
