package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

func newTestAnalyticsService(t *testing.T) (*AnalyticsService, *storage.LogStore) {
	t.Helper()
	logs := storage.NewLogStore(t.TempDir(), discardLogger())
	svc := NewAnalyticsService(logs)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, logs
}

func appendMeal(t *testing.T, logs *storage.LogStore, date string, calories, protein, carbs, fat float64) {
	t.Helper()
	require.NoError(t, logs.Append("alice", models.MealRecord{
		Date: date, MealType: models.Lunch, Name: "Meal",
		Servings: 1, Calories: calories, Protein: protein, Carbs: carbs, Fat: fat,
	}))
}

func TestDailySummary_TotalsAllMacros(t *testing.T) {
	svc, logs := newTestAnalyticsService(t)
	appendMeal(t, logs, "2025-06-15", 400, 20, 50, 10)
	appendMeal(t, logs, "2025-06-15", 600, 30, 60, 25)
	appendMeal(t, logs, "2025-06-14", 999, 1, 1, 1)

	summary, err := svc.DailySummary("alice", "2025-06-15")
	require.NoError(t, err)
	require.Equal(t, 2, summary.Meals)
	require.InDelta(t, 1000, summary.Calories, 1e-9)
	require.InDelta(t, 50, summary.Protein, 1e-9)
	require.InDelta(t, 110, summary.Carbs, 1e-9)
	require.InDelta(t, 35, summary.Fat, 1e-9)
}

func TestDailySummary_EmptyDay(t *testing.T) {
	svc, _ := newTestAnalyticsService(t)

	summary, err := svc.DailySummary("alice", "2025-06-15")
	require.NoError(t, err)
	require.Zero(t, summary.Meals)
	require.Zero(t, summary.Calories)
}

func TestCalorieTrend_WeekWindowSortedByDate(t *testing.T) {
	svc, logs := newTestAnalyticsService(t)
	appendMeal(t, logs, "2025-06-12", 500, 0, 0, 0)
	appendMeal(t, logs, "2025-06-12", 200, 0, 0, 0)
	appendMeal(t, logs, "2025-06-10", 300, 0, 0, 0)
	appendMeal(t, logs, "2025-06-01", 800, 0, 0, 0) // outside the week

	trend, err := svc.CalorieTrend("alice", RangeWeek, false)
	require.NoError(t, err)
	require.Equal(t, []DayTotal{
		{Date: "2025-06-10", Calories: 300},
		{Date: "2025-06-12", Calories: 700},
	}, trend)
}

func TestCalorieTrend_IncludeMissingZeroFills(t *testing.T) {
	svc, logs := newTestAnalyticsService(t)
	appendMeal(t, logs, "2025-06-10", 300, 0, 0, 0)

	trend, err := svc.CalorieTrend("alice", RangeWeek, true)
	require.NoError(t, err)
	require.Len(t, trend, 8) // June 8 through June 15 inclusive
	require.Equal(t, "2025-06-08", trend[0].Date)
	require.Equal(t, "2025-06-15", trend[7].Date)
	for _, day := range trend {
		if day.Date == "2025-06-10" {
			require.InDelta(t, 300, day.Calories, 1e-9)
		} else {
			require.Zero(t, day.Calories)
		}
	}
}

func TestCalorieTrend_MaxRangeCoversEverything(t *testing.T) {
	svc, logs := newTestAnalyticsService(t)
	appendMeal(t, logs, "2024-01-05", 400, 0, 0, 0)
	appendMeal(t, logs, "2025-06-14", 900, 0, 0, 0)

	trend, err := svc.CalorieTrend("alice", RangeMax, false)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	require.Equal(t, "2024-01-05", trend[0].Date)
}

func TestCalorieTrend_UnknownRange(t *testing.T) {
	svc, _ := newTestAnalyticsService(t)
	_, err := svc.CalorieTrend("alice", TrendRange("decade"), false)
	require.ErrorIs(t, err, ErrUnknownRange)
}
