package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mlevashov/taskdesk/internal/config"
	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/migrations"
)

// DB wraps the raw sql.DB handle together with the driver-specific pieces
// the repositories need: a statement builder with the right placeholder
// format, a constraint-error classifier, and the goose dialect used for
// migrations.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	classifier ConstraintClassifier
	dialect    string
	logger     *logger.Logger
}

// Migrate applies all embedded goose migrations for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// IsUniqueViolation reports whether err is a driver-level uniqueness
// constraint breach on the connected database.
func (db *DB) IsUniqueViolation(err error) bool {
	return db.classifier.Classify(err) == UniqueViolation
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers: "pgx" (PostgreSQL) and "sqlite3" (SQLite).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
