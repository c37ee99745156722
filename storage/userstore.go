package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
)

var ErrUserExists = errors.New("username already exists")

// UserStore keeps the user directory in users.json, one object per user.
// Same single-writer, whole-file-rewrite model as the meal logs.
type UserStore struct {
	dataDir string
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{dataDir: dataDir}
}

func (s *UserStore) path() string {
	return filepath.Join(s.dataDir, "users.json")
}

func (s *UserStore) load() ([]models.User, error) {
	raw, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading users file: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parsing users file: %w", err)
	}
	return users, nil
}

func (s *UserStore) save(users []models.User) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	raw, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), raw, 0o644)
}

// Find matches the username case-insensitively, the same policy Create
// applies to duplicates, and returns the record with its stored casing.
func (s *UserStore) Find(username string) (models.User, bool, error) {
	users, err := s.load()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (s *UserStore) Create(user models.User) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, user.Username) {
			return ErrUserExists
		}
	}
	return s.save(append(users, user))
}
