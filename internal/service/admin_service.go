package service

import (
	"context"
	"fmt"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

const (
	forgeOwnerName   = "Immensee"
	defaultAdminName = "Admin"
)

// demoMovies is the sample list inserted by Forge.
var demoMovies = []models.Movie{
	{Title: "My Neighbor Totoro", Year: "1988"},
	{Title: "Dead Poets Society", Year: "1989"},
	{Title: "A Perfect World", Year: "1993"},
	{Title: "Leon", Year: "1994"},
	{Title: "Mahjong", Year: "1996"},
	{Title: "Swallowtail Butterfly", Year: "1996"},
	{Title: "King of Comedy", Year: "1999"},
	{Title: "Devils on the Doorstep", Year: "1999"},
	{Title: "WALL-E", Year: "2008"},
	{Title: "The Pork of Music", Year: "2012"},
}

type AdminService struct {
	users      repository.UserRepo
	seeder     repository.SeedRepo
	iterations int
}

func NewAdminService(users repository.UserRepo, seeder repository.SeedRepo, iterations int) *AdminService {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	return &AdminService{users: users, seeder: seeder, iterations: iterations}
}

// Forge inserts the demo owner and movie list.
func (s *AdminService) Forge(ctx context.Context) error {
	movies := make([]models.Movie, len(demoMovies))
	copy(movies, demoMovies)
	return s.seeder.Seed(ctx, models.User{Name: forgeOwnerName}, movies)
}

// UpsertAdmin sets the credentials of the existing owner, or creates one
// named "Admin" when the user table is empty.
func (s *AdminService) UpsertAdmin(ctx context.Context, username, password string) (bool, error) {
	if !validName(username) {
		return false, fmt.Errorf("username: %w", ErrInvalidInput)
	}
	hash, err := hashPassword(password, s.iterations)
	if err != nil {
		return false, fmt.Errorf("password: %w: %v", ErrInvalidInput, err)
	}

	owner, err := s.users.First(ctx)
	if err != nil {
		return false, err
	}
	if owner != nil {
		return false, s.users.UpdateCredentials(ctx, owner.ID, username, hash)
	}
	if _, err := s.users.Create(ctx, models.User{Name: defaultAdminName, Username: username, PasswordHash: hash}); err != nil {
		return false, err
	}
	return true, nil
}
