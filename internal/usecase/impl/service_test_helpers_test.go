package impl

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookmark/config"
	"bookmark/internal/domain/service"
	"bookmark/internal/infra/auth"
	"bookmark/internal/infra/persistence/file"
	"bookmark/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.TTL = time.Hour
	cfg.Session.CookieName = "token"

	return cfg
}

// accountServiceFixtures wires the account service against a real file store
// in a temp directory, so tests exercise the same stack as production.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	store        *file.Store
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	logger := newDiscardLogger()
	store, err := file.New(filepath.Join(t.TempDir(), "users.json"), logger)
	require.NoError(t, err)

	hasher := auth.NewPBKDF2Hasher()
	tokenService, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	svc := NewAccountService(AccountServiceParams{
		UserRepo:     store,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      svc,
		store:        store,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

type progressServiceFixtures struct {
	service usecase.ProgressUsecase
	store   *file.Store
}

func createTestProgressService(t *testing.T) progressServiceFixtures {
	t.Helper()

	logger := newDiscardLogger()
	store, err := file.New(filepath.Join(t.TempDir(), "users.json"), logger)
	require.NoError(t, err)

	svc := NewProgressService(ProgressServiceParams{
		ProgressRepo: store,
		Logger:       logger,
	})

	return progressServiceFixtures{service: svc, store: store}
}
