package service

import (
	"context"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

type SettingsService struct {
	users repository.UserRepo
}

func NewSettingsService(users repository.UserRepo) *SettingsService {
	return &SettingsService{users: users}
}

// Owner returns the first user record, shown in page titles and the footer.
// It is nil before any user exists.
func (s *SettingsService) Owner(ctx context.Context) (*models.User, error) {
	return s.users.First(ctx)
}

func (s *SettingsService) UpdateName(ctx context.Context, userID int, name string) error {
	if !validName(name) {
		return ErrInvalidInput
	}
	return s.users.UpdateName(ctx, userID, name)
}
