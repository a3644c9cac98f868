// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bookmark/internal/delivery/http/middleware"
	"bookmark/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers and guards, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProgressHandler *handler.ProgressHandler
	HealthHandler   *handler.HealthHandler
	Session         *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	progressHandler *handler.ProgressHandler
	healthHandler   *handler.HealthHandler
	session         *middleware.SessionMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		progressHandler: params.ProgressHandler,
		healthHandler:   params.HealthHandler,
		session:         params.Session,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	// Public auth routes.
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout)

	// Routes behind the session guard.
	e.GET("/profile", r.authHandler.Profile, r.session.Authenticate)
	e.DELETE("/account", r.authHandler.DeleteAccount, r.session.Authenticate)
	e.GET("/progress", r.progressHandler.Get, r.session.Authenticate)
	e.PUT("/progress", r.progressHandler.Save, r.session.Authenticate)
}
