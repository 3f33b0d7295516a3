package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUniqueViolation is returned when an INSERT or UPDATE is rejected
	// by the database because it would break the uniqueness constraint on
	// the accounts (handle, contact_address) pair. The store-level
	// constraint is the authoritative enforcement; any pre-check done by
	// callers is an optimization for a friendlier error.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrAccountNotFound is returned when a query expected to match an
	// account produces an empty result set.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrRecordNotFound is returned when a query or mutation targets a
	// record that does not exist in the database.
	ErrRecordNotFound = errors.New("record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
