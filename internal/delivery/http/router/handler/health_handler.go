package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookmark/config"
	"bookmark/internal/delivery/http/response"
)

// HealthHandler reports service liveness and the running environment.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check is a simple handler to check if the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, response.HealthBody{
		Status:      "ok",
		Environment: h.cfg.Env.Env,
	})
}
