package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/gormstore"
	"fooddelivery/internal/pkg/logging"
	"fooddelivery/internal/pkg/metrics"
	"fooddelivery/internal/pkg/shutdown"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	serviceName    = "food-delivery-orders"
	serviceVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, _ := logging.ParseLevel(config.LogLevel)
	logger := logging.New(level)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	m, err := metrics.New(serviceName, serviceVersion)
	if err != nil {
		log.Fatalf("Failed to set up metrics: %v", err)
	}

	db, err := gormstore.Open(ctx, config.DBDriver, config.DSN(), gormstore.DefaultPoolOptions())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if config.DBAutoMigrate {
		if err = gormstore.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	app := cmd.NewCompositionRoot(config, db, m, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	logger.Info("background jobs started", "count", jobManager.Len())

	e := app.CreateHTTPServer().NewEcho()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", config.HTTPAddress(), "driver", config.DBDriver)
		if err := e.Start(config.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-serverErr:
		logger.Error("HTTP server failed", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err := m.Shutdown(shutdownCtx); err != nil {
		logger.Error("Metrics shutdown failed", "error", err)
	}
	if err := gormstore.Close(db); err != nil {
		logger.Error("Database close failed", "error", err)
	}

	logger.Info("Shutdown complete")
}
