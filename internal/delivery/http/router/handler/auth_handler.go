// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookmark/config"
	"bookmark/internal/delivery/http/middleware"
	"bookmark/internal/delivery/http/response"
	domainerrors "bookmark/internal/domain/errors"
	"bookmark/internal/usecase"
)

// AuthHandler holds dependencies for the account endpoints.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.UserEnvelope{
		Message: "user registered successfully",
		User:    response.NewUserPayload(user),
	})
}

// Login handles the user login request. On success the session token is
// handed to the client only through the cookie, never in the body.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed login payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, int(h.cfg.Session.TTL.Seconds())))

	return c.JSON(http.StatusOK, response.UserEnvelope{
		Message: "login successful",
		User:    response.NewUserPayload(output.User),
	})
}

// Profile handles the request for the authenticated user's profile.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrSessionInvalid.WrapMessage("identity missing from request context")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.UserEnvelope{
		User: response.NewUserPayload(user),
	})
}

// Logout clears the client's session cookie. There is no server-side
// revocation list: an already-issued token stays valid until it expires,
// logout only removes the client's copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))

	return c.JSON(http.StatusOK, response.MessageBody{Message: "logged out successfully"})
}

// DeleteAccount removes the authenticated user's account after re-verifying
// the password, then clears the session cookie.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrSessionInvalid.WrapMessage("identity missing from request context")
	}

	var input deleteAccountRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed account deletion payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID, input.Password); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie("", -1))

	return c.JSON(http.StatusOK, response.MessageBody{Message: "account deleted"})
}

// sessionCookie builds the session cookie per the frontend contract:
// HttpOnly and SameSite=Strict, Secure only when configured.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cfg.Session.CookieSecure,
	}
}
