package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookmark/internal/domain/entity"
	"bookmark/internal/domain/repository"
	"bookmark/internal/errors"
	"bookmark/internal/infra/persistence/model"
)

// progressRepository implements repository.ProgressRepository using GORM.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert creates or replaces the progress row for progress.UserID.
func (repo *progressRepository) Upsert(ctx context.Context, progress *entity.ReadingProgress) error {
	progressM := &model.ProgressModel{
		UserID:    progress.UserID,
		Page:      progress.Page,
		Chapter:   progress.Chapter,
		UpdatedAt: progress.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"page", "chapter", "updated_at"}),
	}).Create(progressM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert reading progress")
	}

	return nil
}

// FindByUserID retrieves the progress row for a user.
func (repo *progressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error) {
	var progressM model.ProgressModel
	if err := repo.db.WithContext(ctx).First(&progressM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find reading progress")
	}

	return &entity.ReadingProgress{
		UserID:    progressM.UserID,
		Page:      progressM.Page,
		Chapter:   progressM.Chapter,
		UpdatedAt: progressM.UpdatedAt,
	}, nil
}
