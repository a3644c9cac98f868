package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookmark/internal/delivery/http/middleware"
	"bookmark/internal/delivery/http/response"
	domainerrors "bookmark/internal/domain/errors"
	"bookmark/internal/usecase"
)

// ProgressHandler holds dependencies for the reading-progress endpoints.
type ProgressHandler struct {
	uc     usecase.ProgressUsecase
	logger *slog.Logger
}

// NewProgressHandler is the constructor for ProgressHandler, injected by Fx.
func NewProgressHandler(uc usecase.ProgressUsecase, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{uc: uc, logger: logger}
}

type saveProgressRequest struct {
	Page    int    `json:"page" validate:"min=1"`
	Chapter string `json:"chapter"`
}

// Save handles the request to save the caller's reading progress.
func (h *ProgressHandler) Save(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrSessionInvalid.WrapMessage("identity missing from request context")
	}

	var input saveProgressRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed progress payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("page must be a positive number")
	}

	progress, err := h.uc.Save(c.Request().Context(), userID, &usecase.SaveProgressInput{
		Page:    input.Page,
		Chapter: input.Chapter,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.ProgressEnvelope{
		Message:  "progress saved",
		Progress: response.NewProgressPayload(progress),
	})
}

// Get handles the request to fetch the caller's reading progress.
func (h *ProgressHandler) Get(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrSessionInvalid.WrapMessage("identity missing from request context")
	}

	progress, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.ProgressEnvelope{
		Progress: response.NewProgressPayload(progress),
	})
}
