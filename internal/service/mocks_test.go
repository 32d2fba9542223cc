package service

import (
	"context"

	"watchlist/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.UserRepo.
type mockUserRepo struct {
	CreateFn            func(u models.User) (int, error)
	GetByIDFn           func(id int) (*models.User, error)
	GetByUsernameFn     func(username string) (*models.User, error)
	FirstFn             func() (*models.User, error)
	UpdateNameFn        func(id int, name string) error
	UpdateCredentialsFn func(id int, username, hash string) error

	created     []models.User
	renamed     []string
	credentials []string
	getCalls    []string
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) (int, error) {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) First(_ context.Context) (*models.User, error) {
	return m.FirstFn()
}

func (m *mockUserRepo) UpdateName(_ context.Context, id int, name string) error {
	m.renamed = append(m.renamed, name)
	return m.UpdateNameFn(id, name)
}

func (m *mockUserRepo) UpdateCredentials(_ context.Context, id int, username, hash string) error {
	m.credentials = append(m.credentials, username+"|"+hash)
	return m.UpdateCredentialsFn(id, username, hash)
}

// memMovieRepo keeps movies in a slice, in insertion order.
type memMovieRepo struct {
	movies []models.Movie
	nextID int
	err    error
}

func (m *memMovieRepo) List(context.Context) ([]models.Movie, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Movie, len(m.movies))
	copy(out, m.movies)
	return out, nil
}

func (m *memMovieRepo) GetByID(_ context.Context, id int) (*models.Movie, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, mv := range m.movies {
		if mv.ID == id {
			mv := mv
			return &mv, nil
		}
	}
	return nil, nil
}

func (m *memMovieRepo) Create(_ context.Context, mv models.Movie) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	mv.ID = m.nextID
	m.movies = append(m.movies, mv)
	return mv.ID, nil
}

func (m *memMovieRepo) Update(_ context.Context, mv models.Movie) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.movies {
		if m.movies[i].ID == mv.ID {
			m.movies[i] = mv
		}
	}
	return nil
}

func (m *memMovieRepo) Delete(_ context.Context, id int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.movies {
		if m.movies[i].ID == id {
			m.movies = append(m.movies[:i], m.movies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockSeedRepo struct {
	user   models.User
	movies []models.Movie
	err    error
}

func (m *mockSeedRepo) Seed(_ context.Context, u models.User, movies []models.Movie) error {
	m.user, m.movies = u, movies
	return m.err
}
