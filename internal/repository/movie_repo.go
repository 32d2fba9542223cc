package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/models"
)

type MovieSQLite struct {
	db *sql.DB
}

func NewMovieSQLite(db *sql.DB) *MovieSQLite {
	return &MovieSQLite{db: db}
}

var _ MovieRepo = (*MovieSQLite)(nil)

const (
	movieColumns = `id, COALESCE(title, ''), COALESCE(year, '')`

	selectMoviesSQL    = `SELECT ` + movieColumns + ` FROM movie ORDER BY id`
	selectMovieByIDSQL = `SELECT ` + movieColumns + ` FROM movie WHERE id = ?`
	insertMovieSQL     = `INSERT INTO movie (title, year) VALUES (?, ?)`
	updateMovieSQL     = `UPDATE movie SET title = ?, year = ? WHERE id = ?`
	deleteMovieSQL     = `DELETE FROM movie WHERE id = ?`
)

// List returns every movie in insertion order.
func (r *MovieSQLite) List(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, selectMoviesSQL)
	if err != nil {
		return nil, fmt.Errorf("select movies: %w", err)
	}
	defer rows.Close()

	out := make([]models.Movie, 0, 16)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return out, nil
}

// GetByID returns (nil, nil) if the movie does not exist.
func (r *MovieSQLite) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	var m models.Movie
	err := r.db.QueryRowContext(ctx, selectMovieByIDSQL, id).Scan(&m.ID, &m.Title, &m.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select movie %d: %w", id, err)
	}
	return &m, nil
}

func (r *MovieSQLite) Create(ctx context.Context, m models.Movie) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMovieSQL, m.Title, m.Year)
	if err != nil {
		return 0, fmt.Errorf("insert movie %q: %w", m.Title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for movie %q: %w", m.Title, err)
	}
	return int(id), nil
}

func (r *MovieSQLite) Update(ctx context.Context, m models.Movie) error {
	if _, err := r.db.ExecContext(ctx, updateMovieSQL, m.Title, m.Year, m.ID); err != nil {
		return fmt.Errorf("update movie %d: %w", m.ID, err)
	}
	return nil
}

// Delete reports whether a row was removed.
func (r *MovieSQLite) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteMovieSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete movie %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for movie %d: %w", id, err)
	}
	return n > 0, nil
}
