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

// accountColumns is the canonical column list scanned into models.Account.
var accountColumns = []string{"id", "handle", "contact_address", "credential_hash", "created_at"}

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation, lookup and mutation against the "accounts"
// table. The table carries UNIQUE constraints on handle and contact_address;
// a breached constraint is surfaced as [ErrUniqueViolation] so that the
// service layer can convert it into a caller-facing conflict.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// FindByHandleOrContact returns any account whose handle or contact address
// matches the given values. At most one row is consulted; when both fields
// collide on different rows, whichever the database returns first is used —
// the caller tie-breaks on field equality anyway.
func (r *accountRepository) FindByHandleOrContact(ctx context.Context, handle, contact string) (models.Account, error) {
	query := r.db.builder.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Or{sq.Eq{"handle": handle}, sq.Eq{"contact_address": contact}}).
		Limit(1)

	return r.findOne(ctx, query)
}

// FindByID retrieves the account with the given identifier.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	query := r.db.builder.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": id})

	return r.findOne(ctx, query)
}

// FindByContact retrieves the account whose contact address matches contact.
// This is the lookup behind both login and principal resolution.
func (r *accountRepository) FindByContact(ctx context.Context, contact string) (models.Account, error) {
	query := r.db.builder.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"contact_address": contact})

	return r.findOne(ctx, query)
}

// List returns a page of accounts ordered by id. A zero limit falls back to
// the repository default.
func (r *accountRepository) List(ctx context.Context, offset, limit uint64) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		limit = defaultListLimit
	}

	sqlQuery, args, err := r.db.builder.
		Select(accountColumns...).
		From("accounts").
		OrderBy("id").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Handle, &account.ContactAddress, &account.CredentialHash, &account.CreatedAt); err != nil {
			log.Err(err).Str("func", "*accountRepository.List").Msg("error scanning account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// Insert persists a new account and returns the fully populated
// [models.Account] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - uniqueness constraint breach → [ErrUniqueViolation]
//   - any other driver-level error → wrapped as unexpected DB error
func (r *accountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Insert("accounts").
		Columns("handle", "contact_address", "credential_hash").
		Values(account.Handle, account.ContactAddress, account.CredentialHash).
		Suffix("RETURNING id, handle, contact_address, credential_hash, created_at").
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, sqlQuery, args...)

	var saved models.Account
	if err := scanAccount(row, &saved); err != nil {
		if r.db.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*accountRepository.Insert").Msg("unique constraint violation")
			return models.Account{}, ErrUniqueViolation
		}
		log.Err(err).Str("func", "*accountRepository.Insert").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// Update persists all mutable fields of account (handle, contact address,
// credential hash) and returns the stored row.
//
// Error handling:
//   - uniqueness constraint breach → [ErrUniqueViolation]
//   - no row with account.ID → [ErrAccountNotFound]
func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Update("accounts").
		Set("handle", account.Handle).
		Set("contact_address", account.ContactAddress).
		Set("credential_hash", account.CredentialHash).
		Where(sq.Eq{"id": account.ID}).
		Suffix("RETURNING id, handle, contact_address, credential_hash, created_at").
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, sqlQuery, args...)

	var saved models.Account
	if err := scanAccount(row, &saved); err != nil {
		switch {
		case r.db.IsUniqueViolation(err):
			log.Err(err).Str("func", "*accountRepository.Update").Msg("unique constraint violation")
			return models.Account{}, ErrUniqueViolation
		case errors.Is(err, sql.ErrNoRows):
			return models.Account{}, ErrAccountNotFound
		default:
			log.Err(err).Str("func", "*accountRepository.Update").Msg("error updating account")
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// Delete removes the account row. Deleting an already-absent account is
// reported as [ErrAccountNotFound].
func (r *accountRepository) Delete(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.builder.
		Delete("accounts").
		Where(sq.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("error deleting account")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) findOne(ctx context.Context, query sq.SelectBuilder) (models.Account, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, sqlQuery, args...)

	var found models.Account
	if err := scanAccount(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func scanAccount(row *sql.Row, dst *models.Account) error {
	return row.Scan(&dst.ID, &dst.Handle, &dst.ContactAddress, &dst.CredentialHash, &dst.CreatedAt)
}
