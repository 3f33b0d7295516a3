package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mlevashov/taskdesk/internal/config"
	"github.com/mlevashov/taskdesk/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, verifies it with a ping, and returns a [DB] configured with
// dollar-sign placeholders and the PostgreSQL constraint classifier.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: NewPostgresConstraintClassifier(),
		dialect:    "pgx",
		logger:     log,
	}, nil
}

// PostgresConstraintClassifier implements [ConstraintClassifier] for
// PostgreSQL. It inspects the pgconn error code returned by the pgx driver.
type PostgresConstraintClassifier struct{}

// NewPostgresConstraintClassifier constructs a [PostgresConstraintClassifier]
// ready for use.
func NewPostgresConstraintClassifier() *PostgresConstraintClassifier {
	return &PostgresConstraintClassifier{}
}

// Classify implements [ConstraintClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and maps code 23505 (unique_violation) to
// [UniqueViolation]. Nil and non-PostgreSQL errors yield [OtherError].
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresConstraintClassifier) Classify(err error) ConstraintClassification {
	if err == nil {
		return OtherError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return UniqueViolation
	}

	return OtherError
}
