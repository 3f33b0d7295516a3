package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/models"
)

// defaultListLimit caps unbounded list queries.
const defaultListLimit = 100

var recordColumns = []string{"id", "owner_id", "title", "description", "state", "created_at", "updated_at"}

// recordRepository is the SQL-backed implementation of [RecordRepository].
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new record and returns the stored row with
// server-assigned fields (ID, CreatedAt, UpdatedAt).
func (r *recordRepository) Insert(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Insert("records").
		Columns("owner_id", "title", "description", "state").
		Values(record.OwnerID, record.Title, record.Description, record.State).
		Suffix("RETURNING id, owner_id, title, description, state, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, sqlQuery, args...)

	var saved models.Record
	if err := scanRecord(row, &saved); err != nil {
		log.Err(err).Str("func", "*recordRepository.Insert").Msg("error inserting record")
		return models.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindByID retrieves the record with the given identifier, regardless of
// owner. Ownership decisions belong to the service layer.
func (r *recordRepository) FindByID(ctx context.Context, id int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Select(recordColumns...).
		From("records").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, sqlQuery, args...)

	var found models.Record
	if err := scanRecord(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.FindByID").Msg("error: scanning error")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// List returns the records matching filter, ordered by id. The WHERE clause
// is assembled dynamically: only non-zero filter fields restrict the result.
func (r *recordRepository) List(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(recordColumns...).
		From("records").
		OrderBy("id")

	if filter.OwnerID != 0 {
		query = query.Where(sq.Eq{"owner_id": filter.OwnerID})
	}
	if filter.State != "" {
		query = query.Where(sq.Eq{"state": filter.State})
	}
	if filter.Title != "" {
		query = query.Where(sq.Like{"title": "%" + filter.Title + "%"})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	query = query.Offset(filter.Offset).Limit(limit)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var record models.Record
		if err := rows.Scan(&record.ID, &record.OwnerID, &record.Title, &record.Description, &record.State, &record.CreatedAt, &record.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*recordRepository.List").Msg("error scanning record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Update persists the mutable fields of record (title, description, state),
// refreshes updated_at, and returns the stored row.
func (r *recordRepository) Update(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Update("records").
		Set("title", record.Title).
		Set("description", record.Description).
		Set("state", record.State).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": record.ID}).
		Suffix("RETURNING id, owner_id, title, description, state, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, sqlQuery, args...)

	var saved models.Record
	if err := scanRecord(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.Update").Msg("error updating record")
		return models.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// Delete removes the record row. Deleting an already-absent record is
// reported as [ErrRecordNotFound].
func (r *recordRepository) Delete(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Delete("records").
		Where(sq.Eq{"id": record.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Msg("error deleting record")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanRecord(row *sql.Row, dst *models.Record) error {
	return row.Scan(&dst.ID, &dst.OwnerID, &dst.Title, &dst.Description, &dst.State, &dst.CreatedAt, &dst.UpdatedAt)
}
