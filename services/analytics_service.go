package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

var ErrUnknownRange = errors.New("unknown trend range")

// AnalyticsService produces the numbers behind the dashboard charts:
// per-day totals, the macro split and the calorie trend over a range.
// Nothing beyond sums and means.
type AnalyticsService struct {
	logs *storage.LogStore
	now  func() time.Time
}

func NewAnalyticsService(logs *storage.LogStore) *AnalyticsService {
	return &AnalyticsService{logs: logs, now: time.Now}
}

type DaySummary struct {
	Date     string  `json:"date"`
	Meals    int     `json:"meals"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (s *AnalyticsService) DailySummary(username, date string) (DaySummary, error) {
	day, err := s.logs.LoadDate(username, date)
	if err != nil {
		return DaySummary{}, err
	}
	summary := DaySummary{Date: date, Meals: len(day)}
	for _, rec := range day {
		summary.Calories += rec.Calories
		summary.Protein += rec.Protein
		summary.Carbs += rec.Carbs
		summary.Fat += rec.Fat
	}
	return summary, nil
}

type TrendRange string

const (
	RangeWeek  TrendRange = "week"
	RangeMonth TrendRange = "month"
	RangeYear  TrendRange = "year"
	RangeMax   TrendRange = "max"
)

type DayTotal struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// CalorieTrend aggregates calories per day over the selected range.
// includeMissing zero-fills days with no log entries so chart axes stay
// continuous.
func (s *AnalyticsService) CalorieTrend(username string, rng TrendRange, includeMissing bool) ([]DayTotal, error) {
	all, err := s.logs.Load(username)
	if err != nil {
		return nil, err
	}

	today := s.now()
	var from time.Time
	switch rng {
	case RangeWeek:
		from = today.AddDate(0, 0, -7)
	case RangeMonth:
		from = today.AddDate(0, -1, 0)
	case RangeYear:
		from = today.AddDate(-1, 0, 0)
	case RangeMax:
		// no lower bound
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRange, rng)
	}

	totals := map[string]float64{}
	earliest := today
	for _, rec := range all {
		day, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			continue
		}
		if !from.IsZero() && day.Before(from) {
			continue
		}
		totals[rec.Date] += rec.Calories
		if day.Before(earliest) {
			earliest = day
		}
	}

	var out []DayTotal
	if includeMissing {
		start := from
		if start.IsZero() {
			start = earliest
		}
		for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
			key := d.Format(dateLayout)
			out = append(out, DayTotal{Date: key, Calories: totals[key]})
		}
		return out, nil
	}

	for date, calories := range totals {
		out = append(out, DayTotal{Date: date, Calories: calories})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
