package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevashov/taskdesk/internal/crypto"
	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/models"
)

// accountService is the concrete implementation of AccountService.
//
// Writes on the unique-constrained fields (handle, contact address) are
// conflict-safe: registration pre-checks for duplicates to produce a
// field-specific error, and every write still handles the store's own
// constraint signal as the authoritative fallback. The pre-check-then-insert
// sequence is inherently racy under concurrent identical submissions; the
// store's atomic constraint is the source of truth, the pre-check only buys
// a friendlier message.
type accountService struct {
	accounts store.AccountRepository
	hasher   *crypto.PasswordHasher
	logger   *logger.Logger
}

// NewAccountService constructs an AccountService over the given repository
// and password hasher.
func NewAccountService(accounts store.AccountRepository, hasher *crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates a new account.
//
// Sequence: validate, pre-check for an existing account matching the handle
// OR the contact address, hash the password, insert. On a pre-check hit the
// handle is compared before the contact address, so a row colliding on both
// fields reports ErrDuplicateHandle.
//
// Returns the persisted account (with store-assigned ID) or:
//   - ErrInvalidDataProvided for missing fields.
//   - ErrDuplicateHandle / ErrDuplicateContact from the pre-check.
//   - ErrUniqueConflict when a concurrent writer won the race and the
//     store constraint fired at insert time.
func (s *accountService) Register(ctx context.Context, req models.AccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if req.Handle == "" || req.ContactAddress == "" || req.Password == "" {
		log.Error().Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	existing, err := s.accounts.FindByHandleOrContact(ctx, req.Handle, req.ContactAddress)
	switch {
	case err == nil:
		// handle takes priority when both fields collide on the same row
		if existing.Handle == req.Handle {
			return models.Account{}, ErrDuplicateHandle
		}
		return models.Account{}, ErrDuplicateContact
	case errors.Is(err, store.ErrAccountNotFound):
		// no duplicate, proceed
	default:
		log.Err(err).Msg("duplicate pre-check failed")
		return models.Account{}, fmt.Errorf("duplicate pre-check failed: %w", err)
	}

	credentialHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, err
	}

	created, err := s.accounts.Insert(ctx, models.Account{
		Handle:         req.Handle,
		ContactAddress: req.ContactAddress,
		CredentialHash: credentialHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			log.Debug().Str("handle", req.Handle).Msg("insert lost uniqueness race")
			return models.Account{}, ErrUniqueConflict
		}
		log.Err(err).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// List returns a page of accounts ordered by id.
func (s *accountService) List(ctx context.Context, offset, limit uint64) ([]models.Account, error) {
	return s.accounts.List(ctx, offset, limit)
}

// Get returns the account with the given id, or store.ErrAccountNotFound.
func (s *accountService) Get(ctx context.Context, id int64) (models.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

// Update replaces the mutable fields of the principal's own account: handle,
// contact address and (re-hashed) credential.
//
// The ownership guard runs before anything else: a principal may update only
// the account row it resolved to. Unlike Register there is no duplicate
// pre-check — a store-level constraint breach at commit time is reported as
// the single, field-undifferentiated ErrUniqueConflict.
func (s *accountService) Update(ctx context.Context, principal models.Account, id int64, req models.AccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(principal, id); err != nil {
		log.Debug().Int64("principal", principal.ID).Int64("target", id).Msg("account update denied")
		return models.Account{}, err
	}

	if req.Handle == "" || req.ContactAddress == "" || req.Password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	credentialHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, err
	}

	principal.Handle = req.Handle
	principal.ContactAddress = req.ContactAddress
	principal.CredentialHash = credentialHash

	updated, err := s.accounts.Update(ctx, principal)
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return models.Account{}, ErrUniqueConflict
		}
		log.Err(err).Msg("account update ended with error")
		return models.Account{}, fmt.Errorf("account update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the principal's own account. No conflict is possible; the
// only rejection paths are the ownership guard and a vanished row.
func (s *accountService) Delete(ctx context.Context, principal models.Account, id int64) error {
	log := logger.FromContext(ctx)

	if err := Authorize(principal, id); err != nil {
		log.Debug().Int64("principal", principal.ID).Int64("target", id).Msg("account delete denied")
		return err
	}

	if err := s.accounts.Delete(ctx, principal); err != nil {
		log.Err(err).Msg("account delete ended with error")
		return err
	}

	return nil
}
