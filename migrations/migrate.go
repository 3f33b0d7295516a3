// Package migrations applies the embedded goose SQL migrations for the
// connected database dialect. PostgreSQL and SQLite keep separate migration
// directories because their DDL for identity columns and column defaults
// differs.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given dialect ("pgx" or
// "sqlite3") against db.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir, err := migrationDir(dialect)
	if err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationDir(dialect string) (string, error) {
	switch dialect {
	case "pgx":
		return "postgres", nil
	case "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}
