package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/gormstore/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	flag.Usage = func() {
		logger.Info("usage: migrate <up|down|version>")
	}
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("failed to load .env file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	os.Exit(run(logger, flag.Args(), os.Getenv))
}

// run executes one migrate command and returns the process exit code. Deferred
// cleanup has finished by the time it returns.
func run(logger *slog.Logger, args []string, getenv func(string) string) int {
	if len(args) < 1 {
		flag.Usage()
		return 1
	}

	command := args[0]
	switch command {
	case "up", "down", "version":
	default:
		logger.Error("unknown command", slog.String("command", command))
		return 1
	}

	config, err := cmd.LoadConfig(getenv)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		return 1
	}

	src, err := migrations.Source(config.DBDriver)
	if err != nil {
		logger.Error("failed to open migrations", slog.String("error", err.Error()))
		return 1
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, config.MigrationURL())
	if err != nil {
		logger.Error("failed to create migrate instance", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Error("failed to close migrate instance", slog.String("error", err.Error()))
		}
	}()

	switch command {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no pending migrations")
			return 0
		}
		if err != nil {
			logger.Error("migration up failed", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("migrations applied successfully", slog.String("driver", config.DBDriver))

	case "down":
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) || errors.Is(err, fs.ErrNotExist) {
			logger.Info("no migrations to rollback")
			return 0
		}
		if err != nil {
			logger.Error("migration down failed", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("migration rolled back successfully")

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("no migrations applied yet")
			return 0
		}
		if err != nil {
			logger.Error("failed to get version", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}

	return 0
}
