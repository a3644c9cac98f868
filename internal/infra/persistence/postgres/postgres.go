// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookmark/config"
	"bookmark/internal/errors"
	"bookmark/internal/infra/persistence/model"
)

const startupTimeout = 30 * time.Second

// New creates the PostgreSQL client and registers lifecycle hooks that ping
// and migrate the schema on start and close the pool on stop.
func New(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Store.Postgres == nil {
		return nil, errors.New("postgres store selected but not configured")
	}

	db, err := gorm.Open(pgdriver.Open(dsn(cfg.Store.Postgres)), &gorm.Config{
		// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
		// which the repositories map onto domain errors.
		TranslateError: true,
		Logger:         newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, startupTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}, &model.ProgressModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate PostgreSQL schema")
			}
			logger.Info("Connected to PostgreSQL", slog.String("host", cfg.Store.Postgres.Host))

			return nil
		},
		OnStop: func(context.Context) error {
			logger.Info("Closing PostgreSQL connection pool")

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

func dsn(cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode,
	)
}
