// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"bookmark/internal/domain/service"
	"bookmark/internal/errors"
)

// PBKDF2 parameters. Changing them invalidates every stored credential,
// so they are fixed rather than configurable.
const (
	saltLength = 16
	iterations = 10000
	keyLength  = 64
	delimiter  = ":"
)

// pbkdf2Hasher derives credentials as hex(salt):hex(pbkdf2-sha512 key).
// The delimiter cannot appear in hex, so the split is unambiguous.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash derives a salted credential from a plaintext password.
// A fresh random salt is generated on every call and never reused.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)

	return hex.EncodeToString(salt) + delimiter + hex.EncodeToString(derived), nil
}

// Check reports whether plaintext matches the stored credential.
// Any malformed credential fails closed and returns false. The digest
// comparison is constant-time to avoid timing side-channels.
func (h *pbkdf2Hasher) Check(password, credential string) bool {
	saltHex, storedHex, found := strings.Cut(credential, delimiter)
	if !found {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(storedHex)
	if err != nil || len(stored) != keyLength {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)

	return subtle.ConstantTimeCompare(derived, stored) == 1
}
