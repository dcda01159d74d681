package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/sha256" // SHA-256 hashing for stored refresh tokens
	"encoding/hex"  // hex encoding for digests
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Token kinds carried in the "kind" claim. A refresh token is never accepted
// where an access token is required, and vice versa.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// ErrInvalidToken is the single failure kind for token validation. Callers
// only need pass/fail; expired, tampered and malformed tokens all collapse
// into this error.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the payload carried by both access and refresh tokens.
// Subject identity lives in UserID/Email, authorization in Role, and Kind
// discriminates the two token types.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Kind   string `json:"kind"`
}

// SignedToken pairs a serialized JWT with its expiry so handlers can report
// both to the client.
type SignedToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs a short-lived HS256 access token for a
// user. The TTL is expressed in minutes.
func NewAccessToken(secret string, userID uint64, email, role string, ttlMin int) (SignedToken, error) {
	return newToken(secret, userID, email, role, KindAccess, time.Duration(ttlMin)*time.Minute)
}

// NewRefreshToken builds and signs a long-lived HS256 refresh token. The TTL
// is expressed in days. The caller is expected to also persist HashTokenRaw
// of the result so the token can be rotated and revoked server-side.
func NewRefreshToken(secret string, userID uint64, email, role string, ttlDays int) (SignedToken, error) {
	return newToken(secret, userID, email, role, KindRefresh, time.Duration(ttlDays)*24*time.Hour)
}

func newToken(secret string, userID uint64, email, role, kind string, ttl time.Duration) (SignedToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SignedToken{}, err
	}
	return SignedToken{Token: signed, Exp: exp}, nil
}

// ParseToken verifies signature, expiry and kind of a serialized token and
// returns its claims. Every failure mode returns ErrInvalidToken.
func ParseToken(secret, raw, wantKind string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != wantKind {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashTokenRaw returns the SHA-256 hash of a signed token as a hex string.
// Only this digest is stored in the database, so leaked rows cannot be used
// to refresh sessions.
func HashTokenRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
