package gormstoretest

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/adapters/out/gormstore/migrations"

	"github.com/golang-migrate/migrate/v4"
	"gorm.io/gorm"
)

// Schema selects how the tables are created.
type Schema int

const (
	// SQLMigrations applies the embedded golang-migrate files.
	SQLMigrations Schema = iota
	// AutoMigrate uses gormstore.Migrate.
	AutoMigrate
)

// Database is a running container the integration suites can share.
type Database interface {
	Handle() *gorm.DB
	Truncate() error
	Terminate(ctx context.Context) error
}

var (
	_ Database = (*Postgres)(nil)
	_ Database = (*MySQL)(nil)
)

func applyMigrations(driver, databaseURL string) error {
	src, err := migrations.Source(driver)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
