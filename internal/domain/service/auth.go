// Package service defines contracts for domain services implemented by the
// infrastructure layer.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Token verification failures. Verification fails closed: any error means the
// caller must treat the subject as unauthenticated.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignatureInvalid is returned when the signature does not verify.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the subject extracted from a verified session token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// PasswordHasher derives and verifies stored password credentials.
type PasswordHasher interface {
	// Hash derives a salted credential from a plaintext password.
	// Two calls with the same plaintext produce different credentials.
	Hash(password string) (string, error)

	// Check reports whether plaintext matches the stored credential.
	// Malformed credentials fail closed and return false.
	Check(password, credential string) bool
}

// TokenService issues and verifies signed, time-boxed session tokens.
type TokenService interface {
	// Issue produces a signed token asserting the given identity,
	// expiring TTL() from now.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks signature and expiry, then extracts the identity.
	// The signature is verified before any embedded claim is trusted.
	Verify(token string) (*Identity, error)

	// TTL returns the fixed validity window of issued tokens.
	TTL() time.Duration
}
