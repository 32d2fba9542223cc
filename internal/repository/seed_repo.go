package repository

import (
	"context"
	"database/sql"
	"fmt"

	"watchlist/internal/models"
)

type SeedSQLite struct {
	db *sql.DB
}

func NewSeedSQLite(db *sql.DB) *SeedSQLite {
	return &SeedSQLite{db: db}
}

var _ SeedRepo = (*SeedSQLite)(nil)

// Seed inserts the user and movies atomically.
func (r *SeedSQLite) Seed(ctx context.Context, u models.User, movies []models.Movie) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, insertUserSQL, u.Name, nullIfEmpty(u.Username), nullIfEmpty(u.PasswordHash)); err != nil {
		return fmt.Errorf("seed user %q: %w", u.Name, err)
	}
	for i, m := range movies {
		if _, err := tx.ExecContext(ctx, insertMovieSQL, m.Title, m.Year); err != nil {
			return fmt.Errorf("seed movie %d (%q): %w", i+1, m.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
