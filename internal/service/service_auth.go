package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevashov/taskdesk/internal/crypto"
	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/internal/token"
	"github.com/mlevashov/taskdesk/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification, bearer-token issuance and principal
// resolution using an AccountRepository for persistence, argon2id for
// password verification and the token codec for signing.
type authService struct {
	// accounts is the data-access layer used to look up principals.
	accounts store.AccountRepository

	// hasher verifies passwords against stored credential hashes.
	hasher *crypto.PasswordHasher

	// codec issues and decodes bearer tokens. It holds the signing key
	// injected from configuration.
	codec *token.Codec

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository,
// hasher and token codec.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accounts store.AccountRepository, hasher *crypto.PasswordHasher, codec *token.Codec, logger *logger.Logger) AuthService {
	return &authService{
		accounts: accounts,
		hasher:   hasher,
		codec:    codec,
		logger:   logger,
	}
}

// Login authenticates an existing account by contact address and password.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if contact or password is empty.
//   - ErrContactNotRegistered if no account exists for contact.
//   - ErrWrongPassword if the password does not verify.
//
// The two failure modes are deliberately distinct: the login endpoint
// reports them separately, matching the observed external contract.
func (a *authService) Login(ctx context.Context, contact, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if contact == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accounts.FindByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Str("contact", contact).Msg("login for unknown contact address")
			return models.Account{}, ErrContactNotRegistered
		}
		log.Err(err).Msg("account search by contact failed")
		return models.Account{}, fmt.Errorf("account search by contact failed: %w", err)
	}

	if !a.hasher.Verify(password, account.CredentialHash) {
		log.Debug().Int64("id", account.ID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

// IssueToken mints a signed bearer token for the given account. The token's
// subject claim is the contact address; validity starts now and lasts for
// the codec's configured window.
func (a *authService) IssueToken(ctx context.Context, account models.Account) (string, error) {
	tokenString, err := a.codec.Issue(account.ContactAddress)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return tokenString, nil
}

// Resolve validates tokenString and returns the account it was issued for.
//
// Any decode failure — tampered signature, expiry, malformed token — and a
// subject with no matching account all collapse to ErrUnauthenticated. An
// account deleted after the token was issued is treated identically to one
// that never existed; tokens are stateless and revalidated by lookup on
// every use.
func (a *authService) Resolve(ctx context.Context, tokenString string) (models.Account, error) {
	log := logger.FromContext(ctx)

	subject, err := a.codec.Decode(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token decoding failed")
		return models.Account{}, ErrUnauthenticated
	}

	account, err := a.accounts.FindByContact(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Str("subject", subject).Msg("token subject has no matching account")
			return models.Account{}, ErrUnauthenticated
		}
		log.Err(err).Msg("account search by token subject failed")
		return models.Account{}, fmt.Errorf("account search by token subject failed: %w", err)
	}

	return account, nil
}
