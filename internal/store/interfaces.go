package store

import (
	"context"

	"github.com/mlevashov/taskdesk/models"
)

// AccountRepository is the persistence contract for account entities.
//
// The store enforces the uniqueness of (handle, contact_address) atomically
// regardless of what callers pre-check; Insert and Update surface a
// constraint breach as [ErrUniqueViolation]. Lookups that match nothing
// return [ErrAccountNotFound].
type AccountRepository interface {
	// FindByHandleOrContact returns any account whose handle OR contact
	// address matches the given values. Used as the duplicate pre-check
	// before registration.
	FindByHandleOrContact(ctx context.Context, handle, contact string) (models.Account, error)

	FindByID(ctx context.Context, id int64) (models.Account, error)
	FindByContact(ctx context.Context, contact string) (models.Account, error)

	// List returns a page of accounts ordered by id.
	List(ctx context.Context, offset, limit uint64) ([]models.Account, error)

	Insert(ctx context.Context, account models.Account) (models.Account, error)
	Update(ctx context.Context, account models.Account) (models.Account, error)
	Delete(ctx context.Context, account models.Account) error
}

// RecordFilter restricts and pages the record list query. Zero values mean
// "no restriction"; Limit zero falls back to the repository default.
type RecordFilter struct {
	OwnerID int64
	State   models.RecordState
	Title   string // substring match on title
	Offset  uint64
	Limit   uint64
}

// RecordRepository is the persistence contract for owned records.
// Missing rows are reported as [ErrRecordNotFound].
type RecordRepository interface {
	Insert(ctx context.Context, record models.Record) (models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	List(ctx context.Context, filter RecordFilter) ([]models.Record, error)
	Update(ctx context.Context, record models.Record) (models.Record, error)
	Delete(ctx context.Context, record models.Record) error
}

// ConstraintClassifier maps driver-specific errors to the store's
// [ConstraintClassification] values, normalising PostgreSQL and SQLite
// constraint reporting behind one interface.
type ConstraintClassifier interface {
	Classify(err error) ConstraintClassification
}
