// Package crypto implements credential hashing for account passwords.
//
// Hashes are produced with Argon2id and serialized in the standard PHC
// string format, so every hash is self-contained: the salt and the tuning
// parameters travel inside the encoded string and verification needs no
// external state.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrHashingFailure is returned by [PasswordHasher.Hash] when the OS entropy
// source cannot produce a salt. This is an internal fault, not a
// client-caused rejection; callers should surface it as a server error.
var ErrHashingFailure = errors.New("credential hashing failed")

// PasswordHasher produces and verifies salted Argon2id password hashes.
//
// The zero value is not usable; construct instances with [NewPasswordHasher].
// All state is read-only after construction, so a single hasher is safe for
// concurrent use across requests.
type PasswordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//   - salt length: 16 bytes
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
		keyLen:  32, // 256 bits
		saltLen: 16,
	}
}

// Hash derives a salted Argon2id digest of password and returns it in PHC
// string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 key>
//
// A fresh salt is read from the OS CSPRNG on every call, so hashing the same
// password twice yields different strings. The only failure mode is a salt
// read failure, reported as [ErrHashingFailure].
func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}

	key := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.time,
		p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether password matches the given encoded hash.
//
// The digest is recomputed with the salt and parameters embedded in encoded
// and compared in constant time. Verify never returns an error: a malformed
// string, an unknown algorithm, a mismatched Argon2 version, or a wrong
// password all yield false.
func (p *PasswordHasher) Verify(password, encoded string) bool {
	salt, key, params, ok := decodeHash(encoded)
	if !ok {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1
}

type hashParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// decodeHash splits a PHC-encoded Argon2id string into its salt, key and
// tuning parameters. ok is false for anything this package did not produce.
func decodeHash(encoded string) (salt, key []byte, params hashParams, ok bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, hashParams{}, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, hashParams{}, false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, hashParams{}, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, hashParams{}, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, hashParams{}, false
	}

	return salt, key, hashParams{time: time, memory: memory, threads: threads}, true
}
