// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and HTTP
// response writing.
package utils

import (
	"context"

	"github.com/mlevashov/taskdesk/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated principal is
// stored in the request context. The principal is attached by the auth
// middleware after token validation and is recreated on every request;
// it is never cached beyond request scope.
var PrincipalCtxKey = contextKey("principal")

// PrincipalFromContext retrieves the authenticated account from the context.
//
// Returns the account and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func PrincipalFromContext(ctx context.Context) (models.Account, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Account)
	return principal, ok
}

// WithPrincipal returns a copy of ctx carrying the given account as the
// request principal.
func WithPrincipal(ctx context.Context, principal models.Account) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}
