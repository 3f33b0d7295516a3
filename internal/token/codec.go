// Package token implements the bearer-token codec: issuing and decoding
// signed, time-bounded JWT tokens carrying the account's contact address as
// the subject claim.
//
// The codec is pure: it never consults the account store, and its only state
// is the signing key, issuer name and validity window injected at
// construction. Tokens are stateless — validity is fully determined by
// signature and expiry at verification time, with no revocation mechanism.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by [Codec.Decode]. Callers should match against
// them with [errors.Is].
var (
	// ErrTokenExpired is returned when the token signature is intact but
	// the expiry claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for any token that fails verification
	// for a reason other than expiry: a tampered payload, a signature made
	// with a different key, an unexpected signing method, a wrong issuer,
	// or a string that is not a JWT at all.
	ErrInvalidToken = errors.New("token is invalid")
)

// Codec issues and decodes HMAC-SHA256 signed JWT tokens.
//
// All fields are read-only after construction, so a single Codec is safe for
// concurrent use across requests.
type Codec struct {
	// signKey is the HMAC secret used to sign and verify tokens. It is
	// injected from configuration; no process-global key state exists.
	signKey []byte

	// issuer is the "iss" claim embedded in every issued token. Tokens
	// whose issuer does not match this value are rejected during decoding.
	issuer string

	// ttl controls how long a newly issued token remains valid.
	ttl time.Duration
}

// NewCodec constructs a Codec from the given signing secret, issuer name and
// validity window. Returns an error if any parameter is empty or zero.
func NewCodec(signKey, issuer string, ttl time.Duration) (*Codec, error) {
	if signKey == "" || issuer == "" || ttl == 0 {
		return nil, errors.New("invalid params for token codec")
	}

	return &Codec{
		signKey: []byte(signKey),
		issuer:  issuer,
		ttl:     ttl,
	}, nil
}

// Issue creates a signed token for the given subject (the account's contact
// address), valid from now until now plus the configured ttl.
//
// The token carries the standard claims:
//   - Issuer    (iss): the configured issuer name
//   - Subject   (sub): the subject string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
func (c *Codec) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("empty subject")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return tokenString, nil
}

// Decode verifies tokenString and returns its subject claim.
//
// Verification order: signature integrity and signing method first, then
// expiry, then issuer. Failures are normalised to the two sentinel errors:
// [ErrTokenExpired] when the claims are intact but past their expiry, and
// [ErrInvalidToken] for every other defect.
func (c *Codec) Decode(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return c.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(c.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return subject, nil
}
