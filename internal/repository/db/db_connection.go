package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

//go:embed migrations/*.sql
var embedMigrations embed.FS

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

// Open opens or creates the SQLite file at path. It does not touch the schema;
// call Migrate for that.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// MigrationResult summarizes a Migrate call.
type MigrationResult struct {
	RolledBack int
	Applied    int
	Version    int64
}

// Migrate brings the schema to the latest version. With drop set, every
// applied migration is rolled back first, which removes all data.
func Migrate(ctx context.Context, db *sql.DB, drop bool) (MigrationResult, error) {
	var res MigrationResult

	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return res, fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return res, fmt.Errorf("create migration provider: %w", err)
	}

	if drop {
		down, err := provider.DownTo(ctx, 0)
		if err != nil {
			return res, fmt.Errorf("roll back migrations: %w", err)
		}
		res.RolledBack = len(down)
	}

	up, err := provider.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("apply migrations: %w", err)
	}
	res.Applied = len(up)

	if res.Version, err = provider.GetDBVersion(ctx); err != nil {
		return res, fmt.Errorf("read schema version: %w", err)
	}
	return res, nil
}
