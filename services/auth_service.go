package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username must be 1-64 letters, digits, '-' or '_'")
	ErrInvalidPassword    = errors.New("password must not be empty")
)

// The username becomes part of the log filename, so it is restricted to a
// charset that can never escape the data directory.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type AuthService struct {
	users     *storage.UserStore
	logs      *storage.LogStore
	jwtSecret string
}

func NewAuthService(users *storage.UserStore, logs *storage.LogStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, logs: logs, jwtSecret: jwtSecret}
}

// Register creates the user and provisions an empty meal log. An existing
// log file for the name is never overwritten.
func (s *AuthService) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	if password == "" {
		return ErrInvalidPassword
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.Create(models.User{Username: username, Password: hash}); err != nil {
		return err
	}
	return s.logs.EnsureLog(username)
}

func (s *AuthService) Login(username, password string) (string, error) {
	user, ok, err := s.users.Find(username)
	if err != nil {
		return "", err
	}
	if !ok || !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	// The stored casing is canonical for the log file and the token.
	if err := s.logs.EnsureLog(user.Username); err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.Username, s.jwtSecret)
}

// EnsureDemoUser seeds the shared demo account and its singleton log once.
func (s *AuthService) EnsureDemoUser() error {
	_, ok, err := s.users.Find(storage.DemoUser)
	if err != nil {
		return err
	}
	if !ok {
		hash, err := utils.HashPassword(storage.DemoUser)
		if err != nil {
			return err
		}
		if err := s.users.Create(models.User{Username: storage.DemoUser, Password: hash}); err != nil {
			return err
		}
	}
	return s.logs.EnsureLog(storage.DemoUser)
}
