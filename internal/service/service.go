package service

import (
	"context"
	"errors"
	"time"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

// Domain errors shared by the services. Handlers map them to responses.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid session")
)

// Authorization verifies credentials and resolves session user ids.
type Authorization interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	LoadUser(ctx context.Context, id int) (*models.User, error)
}

// Sessions encodes the session into a signed cookie value and back.
type Sessions interface {
	EncodeSession(s models.Session) (string, error)
	DecodeSession(token string) (models.Session, error)
}

// Watchlist manages the shared movie list.
type Watchlist interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int) (models.Movie, error)
	CreateMovie(ctx context.Context, in MovieInput) (models.Movie, error)
	UpdateMovie(ctx context.Context, id int, in MovieInput) (models.Movie, error)
	DeleteMovie(ctx context.Context, id int) error
}

// Settings exposes the owner record and display-name changes.
type Settings interface {
	Owner(ctx context.Context) (*models.User, error)
	UpdateName(ctx context.Context, userID int, name string) error
}

// Admin holds the one-shot bootstrap operations run from the command line.
type Admin interface {
	Forge(ctx context.Context) error
	UpsertAdmin(ctx context.Context, username, password string) (created bool, err error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Sessions
	Watchlist
	Settings
	Admin
}

// Options carries the settings services need from configuration.
type Options struct {
	SecretKey      string
	SessionTTL     time.Duration
	HashIterations int
}

func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Sessions:      NewSessionService(opts.SecretKey, opts.SessionTTL),
		Watchlist:     NewMovieService(repos.Movies),
		Settings:      NewSettingsService(repos.Users),
		Admin:         NewAdminService(repos.Users, repos.Seeder, opts.HashIterations),
	}
}
