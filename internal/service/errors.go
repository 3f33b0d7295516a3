package service

import "errors"

// Terminal rejection reasons produced by the service layer. The HTTP layer
// maps each of them to a status code; none of them is retried internally —
// every request makes exactly one attempt.
var (
	// ErrInvalidDataProvided is returned when a request body is missing
	// required fields or carries values outside their allowed domain.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when a bearer token is missing,
	// malformed, tampered with, expired, or names a subject with no
	// matching account. A principal deleted after token issuance is
	// indistinguishable from one that never existed.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when a valid principal acts on a resource
	// owned by a different account. Authentication succeeded; the
	// ownership rule did not.
	ErrForbidden = errors.New("not enough permissions")

	// ErrDuplicateHandle is returned by registration when the requested
	// handle is already taken. Produced by the duplicate pre-check.
	ErrDuplicateHandle = errors.New("handle already exists")

	// ErrDuplicateContact is returned by registration when the requested
	// contact address is already taken.
	ErrDuplicateContact = errors.New("contact address already exists")

	// ErrUniqueConflict is returned when the store itself rejects a write
	// over the uniqueness constraint. It deliberately does not say which
	// field collided: this reactive path is the safety net for races the
	// pre-check cannot close, and the store reports only that the
	// constraint fired.
	ErrUniqueConflict = errors.New("handle or contact address already exists")

	// ErrContactNotRegistered is returned by login when no account exists
	// for the supplied contact address.
	ErrContactNotRegistered = errors.New("contact address not registered")

	// ErrWrongPassword is returned by login when the account exists but
	// the password does not verify against the stored credential hash.
	ErrWrongPassword = errors.New("password incorrect")

	// ErrTokenCreationFailed wraps token signing failures during login.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
