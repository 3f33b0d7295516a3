package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/mlevashov/taskdesk/internal/config"
	"github.com/mlevashov/taskdesk/internal/logger"
)

// NewConnectSQLite opens (creating if necessary) a SQLite database file and
// returns a [DB] configured with question-mark placeholders and the SQLite
// constraint classifier.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: NewSQLiteConstraintClassifier(),
		dialect:    "sqlite3",
		logger:     log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for SQLite.
type SQLiteConstraintClassifier struct{}

// NewSQLiteConstraintClassifier constructs a [SQLiteConstraintClassifier]
// ready for use.
func NewSQLiteConstraintClassifier() *SQLiteConstraintClassifier {
	return &SQLiteConstraintClassifier{}
}

// Classify implements [ConstraintClassifier]. SQLite reports a breached
// UNIQUE constraint as SQLITE_CONSTRAINT with the SQLITE_CONSTRAINT_UNIQUE
// extended code.
func (c *SQLiteConstraintClassifier) Classify(err error) ConstraintClassification {
	if err == nil {
		return OtherError
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		sqliteErr.Code == sqlite3.ErrConstraint &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return UniqueViolation
	}

	return OtherError
}
