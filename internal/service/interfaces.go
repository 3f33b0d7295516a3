package service

import (
	"context"

	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/models"
)

// AuthService implements credential verification, token issuance and
// principal resolution.
type AuthService interface {
	// Login verifies the password for the account registered under
	// contact and returns that account.
	Login(ctx context.Context, contact, password string) (models.Account, error)

	// IssueToken mints a signed bearer token whose subject is the
	// account's contact address.
	IssueToken(ctx context.Context, account models.Account) (string, error)

	// Resolve validates a bearer token and returns the live account it
	// was issued for. Fails closed with ErrUnauthenticated.
	Resolve(ctx context.Context, tokenString string) (models.Account, error)
}

// AccountService implements account registration and self-service mutation
// with conflict-safe writes on the unique-constrained fields.
type AccountService interface {
	Register(ctx context.Context, req models.AccountRequest) (models.Account, error)
	List(ctx context.Context, offset, limit uint64) ([]models.Account, error)
	Get(ctx context.Context, id int64) (models.Account, error)
	Update(ctx context.Context, principal models.Account, id int64, req models.AccountRequest) (models.Account, error)
	Delete(ctx context.Context, principal models.Account, id int64) error
}

// RecordService implements CRUD on owned records. Every mutation is
// authorized against the record's owner reference.
type RecordService interface {
	Create(ctx context.Context, principal models.Account, req models.RecordRequest) (models.Record, error)
	List(ctx context.Context, principal models.Account, filter store.RecordFilter) ([]models.Record, error)
	Get(ctx context.Context, principal models.Account, id int64) (models.Record, error)
	Update(ctx context.Context, principal models.Account, id int64, req models.RecordRequest) (models.Record, error)
	Delete(ctx context.Context, principal models.Account, id int64) error
}
