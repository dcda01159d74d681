package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-123"

func TestAccessTokenRoundTrip(t *testing.T) {
	signed, err := NewAccessToken(testSecret, 42, "user@example.com", "customer", 30)
	require.NoError(t, err)
	require.NotEmpty(t, signed.Token)

	claims, err := ParseToken(testSecret, signed.Token, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, KindAccess, claims.Kind)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	signed, err := NewRefreshToken(testSecret, 7, "admin@example.com", "admin", 7)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, signed.Token, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, KindRefresh, claims.Kind)
}

func TestParseTokenKindMismatch(t *testing.T) {
	refresh, err := NewRefreshToken(testSecret, 1, "a@b.com", "customer", 7)
	require.NoError(t, err)
	access, err := NewAccessToken(testSecret, 1, "a@b.com", "customer", 30)
	require.NoError(t, err)

	// A refresh token must never authenticate a request, nor an access token
	// rotate a session.
	_, err = ParseToken(testSecret, refresh.Token, KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseToken(testSecret, access.Token, KindRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenFailures(t *testing.T) {
	signed, err := NewAccessToken(testSecret, 1, "a@b.com", "customer", 30)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{name: "wrong secret", secret: "other-secret", raw: signed.Token},
		{name: "garbage token", secret: testSecret, raw: "not.a.jwt"},
		{name: "empty token", secret: testSecret, raw: ""},
		{name: "truncated token", secret: testSecret, raw: signed.Token[:len(signed.Token)-5]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, tt.raw, KindAccess)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseExpiredToken(t *testing.T) {
	signed, err := newToken(testSecret, 1, "a@b.com", "customer", KindAccess, -1)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed.Token, KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashTokenRaw(t *testing.T) {
	h1 := HashTokenRaw("some-token")
	h2 := HashTokenRaw("some-token")
	h3 := HashTokenRaw("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // sha256 hex
}
