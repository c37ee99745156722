package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GoalStore persists each user's daily calorie goal as a small keyed JSON
// document, independent of the meal logs.
type GoalStore struct {
	dataDir string
}

func NewGoalStore(dataDir string) *GoalStore {
	return &GoalStore{dataDir: dataDir}
}

func (s *GoalStore) path() string {
	return filepath.Join(s.dataDir, "goals.json")
}

func (s *GoalStore) load() (map[string]int, error) {
	raw, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading goals file: %w", err)
	}
	goals := map[string]int{}
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("parsing goals file: %w", err)
	}
	return goals, nil
}

// Get returns the stored goal and whether one was set.
func (s *GoalStore) Get(username string) (int, bool, error) {
	goals, err := s.load()
	if err != nil {
		return 0, false, err
	}
	goal, ok := goals[username]
	return goal, ok, nil
}

func (s *GoalStore) Set(username string, goal int) error {
	goals, err := s.load()
	if err != nil {
		return err
	}
	goals[username] = goal
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	raw, err := json.MarshalIndent(goals, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), raw, 0o644)
}
