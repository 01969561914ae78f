// @title                       Community Health Gateway API
// @version                     1.0
// @description                 Role-based REST gateway for patients, doctors, ASHA workers and pharmacies.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carelink/health-gateway/internal/app"
	"github.com/carelink/health-gateway/internal/infrastructure/db/postgres"
	"github.com/carelink/health-gateway/internal/pkg/config"
	"github.com/carelink/health-gateway/migrations"
	"github.com/carelink/health-gateway/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gateway",
		Short:        "Community health REST gateway",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func setup(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, err := setup(ctx)
			if err != nil {
				return err
			}

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("failed to start gateway")
				return err
			}
			defer a.Close()

			if migrate {
				if err := migrations.Up(ctx, a.DB().DB); err != nil {
					log.Error().Err(err).Msg("failed to apply migrations")
					return err
				}
				log.Info().Msg("migrations applied")
			}

			return a.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	withDB := func(run func(ctx context.Context, db *postgres.DB) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := setup(ctx)
			if err != nil {
				return err
			}
			db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL}, log)
			if err != nil {
				return err
			}
			defer db.Close()
			return run(ctx, db)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: withDB(func(ctx context.Context, db *postgres.DB) error {
			if err := migrations.Up(ctx, db.DB); err != nil {
				return err
			}
			fmt.Println("Migrations applied successfully.")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: withDB(func(ctx context.Context, db *postgres.DB) error {
			return migrations.Status(ctx, db.DB, os.Stdout)
		}),
	})

	return cmd
}
