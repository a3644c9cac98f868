// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Exactly one user exists per email.
type User struct {
	ID        uuid.UUID // Opaque unique identifier, immutable once assigned.
	FirstName string
	LastName  string
	Email     string // Unique, case-sensitive as stored.
	// PasswordHash is the stored credential: hex(salt):hex(derived key).
	// It is never serialized into client responses.
	PasswordHash string
	CreatedAt    time.Time
}
