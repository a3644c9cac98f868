package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "bookmark/internal/delivery/context"
	"bookmark/internal/domain/entity"
	domainerrors "bookmark/internal/domain/errors"
	"bookmark/internal/domain/repository"
	"bookmark/internal/usecase"
)

// progressService implements the ProgressUsecase interface.
type progressService struct {
	progressRepo repository.ProgressRepository
	logger       *slog.Logger
}

// ProgressServiceParams holds dependencies for progressService, injected by Fx.
type ProgressServiceParams struct {
	fx.In

	ProgressRepo repository.ProgressRepository
	Logger       *slog.Logger
}

// NewProgressService is the constructor for progressService.
func NewProgressService(params ProgressServiceParams) usecase.ProgressUsecase {
	return &progressService{
		progressRepo: params.ProgressRepo,
		logger:       params.Logger,
	}
}

func (srv *progressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Save creates or replaces the caller's reading progress.
func (srv *progressService) Save(ctx context.Context, userID uuid.UUID, input *usecase.SaveProgressInput) (*entity.ReadingProgress, error) {
	progress := &entity.ReadingProgress{
		UserID:    userID,
		Page:      input.Page,
		Chapter:   input.Chapter,
		UpdatedAt: time.Now(),
	}

	if err := srv.progressRepo.Upsert(ctx, progress); err != nil {
		srv.log(ctx).Error("Failed to save reading progress", slog.Any("error", err), slog.Any("userID", userID))

		return nil, domainerrors.ErrStoreFailure.WrapMessage("failed to save reading progress")
	}

	srv.log(ctx).Debug("Reading progress saved", slog.Any("userID", userID), slog.Int("page", input.Page))

	return progress, nil
}

// Get retrieves the caller's reading progress.
func (srv *progressService) Get(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error) {
	progress, err := srv.progressRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, domainerrors.ErrProgressNotFound.WrapMessage("progress lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load reading progress")
	}

	return progress, nil
}
