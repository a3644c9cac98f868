package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"bookmark/config"
	domainerrors "bookmark/internal/domain/errors"
	"bookmark/internal/domain/service"
)

// Context keys under which the session middleware stores the verified identity.
const (
	ContextKeyUserID    = "userID"
	ContextKeyUserEmail = "userEmail"
)

// SessionMiddleware guards routes behind the cookie-carried session token.
type SessionMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{tokenSvc: tokenSvc, cfg: cfg, logger: logger}
}

// Authenticate verifies the session cookie and attaches the resolved identity
// to the request context. A missing cookie is 401; a present but unverifiable
// token is 403, and callers rely on that distinction. The verification failure
// reason stays in the logs and is never sent to the client.
//
// The identity is trusted directly from the verified token: the store is not
// re-checked here, so a deleted user's still-valid token passes until expiry.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrAuthRequired.WrapMessage("no session cookie on request")
		}

		identity, err := m.tokenSvc.Verify(cookie.Value)
		if err != nil {
			m.logger.Debug("Session token rejected",
				slog.Any("reason", err),
				slog.String("path", c.Request().URL.Path),
			)

			return domainerrors.ErrSessionInvalid.WrapMessage("session token verification failed")
		}

		c.Set(ContextKeyUserID, identity.UserID)
		c.Set(ContextKeyUserEmail, identity.Email)

		return next(c)
	}
}
