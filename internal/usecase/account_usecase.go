// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookmark/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued session token and the authenticated user.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines the interface for account-related business
// operations. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Register creates a new account. The password is hashed before it is
	// ever handed to the store; the plaintext is never persisted.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile loads the user behind a verified identity. It re-checks the
	// store, so a deleted user's still-valid token yields a not-found error.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteAccount removes the account after re-verifying the password.
	DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error
}
