// Command migrate creates or updates the catalog schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"catalog/config"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Catalog migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
	}
}

// migrate runs after postgres.New's start hook has pinged the database.
func migrate(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Catalog schema is up to date")

			return nil
		},
	})
}
