package service

import (
	"context"
	"fmt"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

// AuthService checks credentials against the stored owner record.
type AuthService struct {
	users repository.UserRepo
}

func NewAuthService(users repository.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Login returns the user whose username and password match.
// Empty input, an unknown username and a wrong password all yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login %q: %w", username, err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if !verifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// LoadUser resolves a session user id. It returns (nil, nil) for id 0 or a
// user that no longer exists, so the request continues as anonymous.
func (s *AuthService) LoadUser(ctx context.Context, id int) (*models.User, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.users.GetByID(ctx, id)
}
