package repository

import (
	"context"
	"errors"

	"bookmark/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProgressNotFound is returned when a user has no saved reading progress.
var ErrProgressNotFound = errors.New("reading progress not found")

// ProgressRepository persists per-user reading progress.
type ProgressRepository interface {
	// Upsert creates or replaces the progress record for progress.UserID.
	Upsert(ctx context.Context, progress *entity.ReadingProgress) error

	// FindByUserID retrieves the progress record for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error)
}
