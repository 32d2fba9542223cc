package repository

import (
	"context"
	"database/sql"

	"watchlist/internal/models"
)

// UserRepo persists the owner account.
type UserRepo interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	First(ctx context.Context) (*models.User, error)
	UpdateName(ctx context.Context, id int, name string) error
	UpdateCredentials(ctx context.Context, id int, username, passwordHash string) error
}

// MovieRepo persists the shared movie list.
type MovieRepo interface {
	List(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id int) (*models.Movie, error)
	Create(ctx context.Context, m models.Movie) (int, error)
	Update(ctx context.Context, m models.Movie) error
	Delete(ctx context.Context, id int) (bool, error)
}

// SeedRepo writes demo data in one transaction.
type SeedRepo interface {
	Seed(ctx context.Context, u models.User, movies []models.Movie) error
}

type Repository struct {
	Users  UserRepo
	Movies MovieRepo
	Seeder SeedRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserSQLite(db),
		Movies: NewMovieSQLite(db),
		Seeder: NewSeedSQLite(db),
	}
}
