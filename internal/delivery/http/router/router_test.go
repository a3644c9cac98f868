package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmark/config"
	"bookmark/internal/delivery/http/middleware"
	"bookmark/internal/delivery/http/router/handler"
	"bookmark/internal/delivery/http/validator"
	"bookmark/internal/infra/auth"
	"bookmark/internal/infra/persistence/file"
	"bookmark/internal/usecase/impl"
)

// newTestServer assembles the whole HTTP stack on a temp-dir file store, the
// same wiring as production minus the listener.
func newTestServer(t *testing.T) (*echo.Echo, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.TTL = time.Hour
	cfg.Session.CookieName = "token"
	cfg.Store.Backend = config.StoreBackendFile
	cfg.Store.File.Path = filepath.Join(t.TempDir(), "users.json")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := file.New(cfg.Store.File.Path, logger)
	require.NoError(t, err)
	hasher := auth.NewPBKDF2Hasher()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo:     store,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	progressUC := impl.NewProgressService(impl.ProgressServiceParams{
		ProgressRepo: store,
		Logger:       logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(accountUC, cfg, logger),
		ProgressHandler: handler.NewProgressHandler(progressUC, logger),
		HealthHandler:   handler.NewHealthHandler(cfg),
		Session:         middleware.NewSessionMiddleware(tokenSvc, cfg, logger),
	}).RegisterRoutes(e)

	return e, cfg
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("response carries no %q cookie", name)

	return nil
}

const registerBody = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"Password123!"}`

func TestRoutes_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test"}`, rec.Body.String())
}

func TestRoutes_RegisterFlow(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.User.ID)
	assert.Equal(t, "ada@example.com", body.User.Email)
	assert.NotContains(t, rec.Body.String(), "password", "credential must never appear in responses")

	// Same email again conflicts.
	rec = doJSON(e, http.MethodPost, "/register", registerBody, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestRoutes_RegisterValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", `{"firstName":"Ada"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/register", `{"email":"not-an-email","password":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_LoginFlow(t *testing.T) {
	e, cfg := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/register", registerBody, nil).Code)

	rec := doJSON(e, http.MethodPost, "/login", `{"email":"ada@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"Password123!"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "unknown email must look like a wrong password")

	rec = doJSON(e, http.MethodPost, "/login", `{"email":"ada@example.com","password":"Password123!"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, cfg.Session.CookieName)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.NotContains(t, rec.Body.String(), cookie.Value, "token travels only in the cookie")
}

func TestRoutes_ProfileGuard(t *testing.T) {
	e, cfg := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/profile", "", &http.Cookie{Name: cfg.Session.CookieName, Value: "garbage"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/register", registerBody, nil).Code)
	login := doJSON(e, http.MethodPost, "/login", `{"email":"ada@example.com","password":"Password123!"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login, cfg.Session.CookieName)

	rec = doJSON(e, http.MethodGet, "/profile", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}

func TestRoutes_ProgressFlow(t *testing.T) {
	e, cfg := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/register", registerBody, nil).Code)
	login := doJSON(e, http.MethodPost, "/login", `{"email":"ada@example.com","password":"Password123!"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login, cfg.Session.CookieName)

	rec := doJSON(e, http.MethodGet, "/progress", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code, "no progress saved yet")

	rec = doJSON(e, http.MethodPut, "/progress", `{"page":0}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPut, "/progress", `{"page":42,"chapter":"The Middle"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/progress", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":42`)
	assert.Contains(t, rec.Body.String(), "The Middle")
}

func TestRoutes_LogoutClearsCookie(t *testing.T) {
	e, cfg := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, cfg.Session.CookieName)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestRoutes_LogoutDoesNotRevokeToken(t *testing.T) {
	e, cfg := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/register", registerBody, nil).Code)
	login := doJSON(e, http.MethodPost, "/login", `{"email":"ada@example.com","password":"Password123!"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login, cfg.Session.CookieName)

	require.Equal(t, http.StatusOK, doJSON(e, http.MethodPost, "/logout", "", cookie).Code)

	// Logout only clears the client's cookie. A kept copy stays valid
	// until the token expires; this is a documented limitation.
	rec := doJSON(e, http.MethodGet, "/profile", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DeleteAccount(t *testing.T) {
	e, cfg := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/register", registerBody, nil).Code)
	login := doJSON(e, http.MethodPost, "/login", `{"email":"ada@example.com","password":"Password123!"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login, cfg.Session.CookieName)

	rec := doJSON(e, http.MethodDelete, "/account", `{"password":"wrong"}`, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/account", `{"password":"Password123!"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// Token still verifies but the account is gone, so the profile 404s.
	rec = doJSON(e, http.MethodGet, "/profile", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Email is free for registration again.
	rec = doJSON(e, http.MethodPost, "/register", registerBody, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
