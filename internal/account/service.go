// internal/account/service.go
package account

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/maison-aurelle/aurelle-backend/internal/config"
	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

var (
	// ErrDuplicateEmail means a user with the exact same email already
	// exists. Matching is case-sensitive.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials means no user matches the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service holds user records and the single active-session pointer. Passwords
// are stored and compared as opaque plaintext values; this is demo-grade auth
// with no hashing or tokens.
type Service struct {
	store *storage.Store
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NewService seeds the configured admin account if no admin exists yet.
func NewService(store *storage.Store, admin config.AdminConfig) *Service {
	s := &Service{store: store}
	s.seedAdmin(admin)
	return s
}

func (s *Service) seedAdmin(admin config.AdminConfig) {
	users := s.users()
	for _, u := range users {
		if u.IsAdmin {
			return
		}
	}
	s.store.Set(storage.KeyUsers, append(users, models.User{
		ID:           "admin-1",
		Email:        admin.Email,
		Name:         admin.Name,
		PasswordHash: admin.Password,
		IsAdmin:      true,
	}))
	logrus.WithField("email", admin.Email).Info("Seeded admin user")
}

func (s *Service) users() []models.User {
	return storage.Get(s.store, storage.KeyUsers, []models.User{})
}

// Register creates a non-admin user and makes it the active session.
func (s *Service) Register(req *RegisterRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	users := s.users()
	for _, u := range users {
		if u.Email == req.Email {
			return nil, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           "user_" + uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: req.Password,
		IsAdmin:      false,
	}
	s.store.Set(storage.KeyUsers, append(users, user))
	s.store.Set(storage.KeySession, models.Session{UserID: user.ID})
	return &user, nil
}

// Login matches email and password exactly and makes the matching user the
// active session.
func (s *Service) Login(req *LoginRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	for _, u := range s.users() {
		if u.Email == req.Email && u.PasswordHash == req.Password {
			s.store.Set(storage.KeySession, models.Session{UserID: u.ID})
			user := u
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the active-session pointer.
func (s *Service) Logout() {
	s.store.Set(storage.KeySession, models.Session{})
}

// CurrentUser resolves the session pointer against the user list. It returns
// false when no session is active or the pointer dangles.
func (s *Service) CurrentUser() (*models.User, bool) {
	session := storage.Get(s.store, storage.KeySession, models.Session{})
	if session.UserID == "" {
		return nil, false
	}
	for _, u := range s.users() {
		if u.ID == session.UserID {
			user := u
			return &user, true
		}
	}
	return nil, false
}
