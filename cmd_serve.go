package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jewelry_backend/internals/configs"
	database "jewelry_backend/internals/databases"
	routes "jewelry_backend/internals/route"
	"jewelry_backend/internals/seeds"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "run migrations before listening")
}

// bootstrap loads the config and opens the database for commands that need it.
func bootstrap() (*configs.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := configs.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	log, err := configs.NewLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close(db)
		_ = log.Sync()
	}()

	if serveMigrate {
		if err := seeds.Initialize(cmd.Context(), db, seeds.Options{Migrate: true}, log); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := routes.NewApp(cfg, db, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ listening", zap.String("port", cfg.Port))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	// graceful shutdown, then the DB pool closes in the defer
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("🛑 shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}
