package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookmark/internal/domain/entity"
)

// SaveProgressInput defines the data required to save reading progress.
type SaveProgressInput struct {
	Page    int
	Chapter string
}

// ProgressUsecase defines the interface for reading-progress operations.
type ProgressUsecase interface {
	// Save creates or replaces the caller's reading progress.
	Save(ctx context.Context, userID uuid.UUID, input *SaveProgressInput) (*entity.ReadingProgress, error)

	// Get retrieves the caller's reading progress.
	Get(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error)
}
