package services

import (
	"errors"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

const (
	DefaultDailyGoal = 2000
	MinDailyGoal     = 500
	MaxDailyGoal     = 6000
)

var ErrGoalOutOfRange = errors.New("daily calorie goal must be between 500 and 6000")

// GoalService tracks the per-user daily calorie goal and reports progress
// against the day's logged intake.
type GoalService struct {
	goals *storage.GoalStore
	logs  *storage.LogStore
}

func NewGoalService(goals *storage.GoalStore, logs *storage.LogStore) *GoalService {
	return &GoalService{goals: goals, logs: logs}
}

func (s *GoalService) GetGoal(username string) (int, error) {
	goal, ok, err := s.goals.Get(username)
	if err != nil {
		return 0, err
	}
	if !ok {
		return DefaultDailyGoal, nil
	}
	return goal, nil
}

func (s *GoalService) SetGoal(username string, goal int) error {
	if goal < MinDailyGoal || goal > MaxDailyGoal {
		return ErrGoalOutOfRange
	}
	return s.goals.Set(username, goal)
}

// DailyProgress sums the date's calories; remaining never goes below zero.
func (s *GoalService) DailyProgress(username, date string) (models.DailyProgress, error) {
	goal, err := s.GetGoal(username)
	if err != nil {
		return models.DailyProgress{}, err
	}
	day, err := s.logs.LoadDate(username, date)
	if err != nil {
		return models.DailyProgress{}, err
	}
	var consumed float64
	for _, rec := range day {
		consumed += rec.Calories
	}
	remaining := float64(goal) - consumed
	if remaining < 0 {
		remaining = 0
	}
	return models.DailyProgress{Goal: goal, Consumed: consumed, Remaining: remaining}, nil
}
