// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/app"
	"github.com/festy23/travel_together/internal/config"
	dbConfig "github.com/festy23/travel_together/internal/database/config"
	"github.com/festy23/travel_together/internal/database/database"
	"github.com/festy23/travel_together/internal/database/migrate"
	"github.com/festy23/travel_together/internal/metrics"
	"github.com/festy23/travel_together/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	databaseCfg := dbConfig.LoadConfigFromEnv()
	db, err := database.NewWithConfig(databaseCfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, databaseCfg.Driver); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	engine := app.NewEngine(cfg, db, metrics.New(), log)
	srv := app.NewServer(cfg.Server, engine)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "addr", srv.Addr, "driver", databaseCfg.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return shutdown(srv, cfg.Server, log)
}

func shutdown(srv *http.Server, cfg config.ServerConfig, log *zap.SugaredLogger) error {
	log.Infow("shutting down server", "timeout", cfg.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Infow("server stopped")
	return nil
}
