package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserSQLite)(nil)

const (
	userColumns = `id, COALESCE(name, ''), COALESCE(username, ''), COALESCE(password_hash, '')`

	insertUserSQL            = `INSERT INTO "user" (name, username, password_hash) VALUES (?, ?, ?)`
	selectUserByIDSQL        = `SELECT ` + userColumns + ` FROM "user" WHERE id = ?`
	selectUserByUsernameSQL  = `SELECT ` + userColumns + ` FROM "user" WHERE username = ? ORDER BY id LIMIT 1`
	selectFirstUserSQL       = `SELECT ` + userColumns + ` FROM "user" ORDER BY id LIMIT 1`
	updateUserNameSQL        = `UPDATE "user" SET name = ? WHERE id = ?`
	updateUserCredentialsSQL = `UPDATE "user" SET username = ?, password_hash = ? WHERE id = ?`
)

// nullIfEmpty stores empty strings as NULL, matching rows created without credentials.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Name, nullIfEmpty(u.Username), nullIfEmpty(u.PasswordHash))
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Name, err)
	}
	return int(lastID), nil
}

func (r *UserSQLite) scanOne(row *sql.Row, what string) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %s: %w", what, err)
	}
	return &u, nil
}

// GetByID returns (nil, nil) if no user has that id.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id=%d", id))
}

// GetByUsername returns the first user with that username, or (nil, nil).
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username), fmt.Sprintf("%q", username))
}

// First returns the owner (lowest id), or (nil, nil) on an empty table.
func (r *UserSQLite) First(ctx context.Context) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectFirstUserSQL), "first")
}

func (r *UserSQLite) UpdateName(ctx context.Context, id int, name string) error {
	if _, err := r.db.ExecContext(ctx, updateUserNameSQL, name, id); err != nil {
		return fmt.Errorf("update name of user %d: %w", id, err)
	}
	return nil
}

func (r *UserSQLite) UpdateCredentials(ctx context.Context, id int, username, passwordHash string) error {
	if _, err := r.db.ExecContext(ctx, updateUserCredentialsSQL, username, passwordHash, id); err != nil {
		return fmt.Errorf("update credentials of user %d: %w", id, err)
	}
	return nil
}
