package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "taskdesk"
)

func newTestCodec(t *testing.T, ttl time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec(testSignKey, testIssuer, ttl)
	require.NoError(t, err)
	return c
}

func TestNewCodec_InvalidParams(t *testing.T) {
	cases := []struct {
		name    string
		signKey string
		issuer  string
		ttl     time.Duration
	}{
		{"empty sign key", "", testIssuer, time.Hour},
		{"empty issuer", testSignKey, "", time.Hour},
		{"zero ttl", testSignKey, testIssuer, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCodec(tc.signKey, tc.issuer, tc.ttl)
			assert.Error(t, err)
		})
	}
}

func TestIssueDecode_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	tokenString, err := codec.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	subject, err := codec.Decode(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestIssue_EmptySubject(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	_, err := codec.Issue("")
	assert.Error(t, err)
}

func TestDecode_Expired(t *testing.T) {
	// negative ttl produces an already-expired token
	codec := newTestCodec(t, -time.Minute)

	tokenString, err := codec.Issue("a@x.com")
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_WrongKey(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	other, err := NewCodec("another-key", testIssuer, time.Hour)
	require.NoError(t, err)

	tokenString, err := other.Issue("a@x.com")
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_WrongIssuer(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	other, err := NewCodec(testSignKey, "someone-else", time.Hour)
	require.NoError(t, err)

	tokenString, err := other.Issue("a@x.com")
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_TamperedToken(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	tokenString, err := codec.Issue("a@x.com")
	require.NoError(t, err)

	// flip one byte in the payload section
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = codec.Decode(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.False(t, errors.Is(err, ErrTokenExpired))
}

func TestDecode_Garbage(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Decode(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}
