package main

import (
	"context"
	"log/slog"
	"os"

	"bookmark/config"
	"bookmark/internal/delivery"
	"bookmark/internal/delivery/http"
	"bookmark/internal/delivery/http/middleware"
	"bookmark/internal/delivery/http/router/handler"
	"bookmark/internal/domain/repository"
	"bookmark/internal/infra/auth"
	logs "bookmark/internal/infra/log"
	"bookmark/internal/infra/persistence/file"
	"bookmark/internal/infra/persistence/postgres"
	"bookmark/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type repoResult struct {
	fx.Out

	UserRepo     repository.UserRepository
	ProgressRepo repository.ProgressRepository
}

// newRepositories selects the storage backend from config. The flat-file
// store serves both repositories from one document, the postgres backend
// splits them across tables.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repoResult, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := postgres.New(lc, cfg, logger)
		if err != nil {
			return repoResult{}, errors.Wrap(err, "failed to open postgres store")
		}

		return repoResult{
			UserRepo:     postgres.NewUserRepository(db),
			ProgressRepo: postgres.NewProgressRepository(db),
		}, nil
	case config.StoreBackendFile:
		store, err := file.New(cfg.Store.File.Path, logger)
		if err != nil {
			return repoResult{}, errors.Wrap(err, "failed to open file store")
		}

		return repoResult{
			UserRepo:     store,
			ProgressRepo: store,
		}, nil
	default:
		return repoResult{}, errors.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProgressService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProgressHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
