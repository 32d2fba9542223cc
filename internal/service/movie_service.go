package service

import (
	"context"
	"fmt"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

type MovieService struct {
	movies repository.MovieRepo
}

func NewMovieService(movies repository.MovieRepo) *MovieService {
	return &MovieService{movies: movies}
}

func (s *MovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movies.List(ctx)
}

// GetMovie returns ErrNotFound for an unknown id.
func (s *MovieService) GetMovie(ctx context.Context, id int) (models.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}
	if m == nil {
		return models.Movie{}, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return *m, nil
}

func (s *MovieService) CreateMovie(ctx context.Context, in MovieInput) (models.Movie, error) {
	if !validateNewMovie(in) {
		return models.Movie{}, ErrInvalidInput
	}
	m := models.Movie{Title: in.Title, Year: in.Year}
	id, err := s.movies.Create(ctx, m)
	if err != nil {
		return models.Movie{}, err
	}
	m.ID = id
	return m, nil
}

// UpdateMovie checks existence before validating, so an unknown id is
// ErrNotFound even when the input is also invalid.
func (s *MovieService) UpdateMovie(ctx context.Context, id int, in MovieInput) (models.Movie, error) {
	m, err := s.GetMovie(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}
	if !validateMovieEdit(in) {
		return m, ErrInvalidInput
	}
	m.Title, m.Year = in.Title, in.Year
	if err := s.movies.Update(ctx, m); err != nil {
		return models.Movie{}, err
	}
	return m, nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, id int) error {
	deleted, err := s.movies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}
