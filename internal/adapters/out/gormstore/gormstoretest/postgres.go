// Package gormstoretest starts disposable PostgreSQL and MySQL databases for
// integration tests.
package gormstoretest

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/adapters/out/gormstore"

	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers the postgres migrate driver
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Postgres is a running container with an open gorm handle.
type Postgres struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	ConnStr   string
}

// StartPostgres runs postgres:15-alpine and creates the order tables.
func StartPostgres(ctx context.Context, schema Schema) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	pg := &Postgres{Container: container}
	if err = pg.init(ctx, schema); err != nil {
		_ = container.Terminate(context.Background())
		return nil, err
	}

	return pg, nil
}

// Handle returns the open gorm handle.
func (p *Postgres) Handle() *gorm.DB {
	return p.DB
}

// Truncate empties both tables and resets identities.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE order_items, orders RESTART IDENTITY CASCADE").Error
}

// Terminate closes the handle and stops the container.
func (p *Postgres) Terminate(ctx context.Context) error {
	return errors.Join(gormstore.Close(p.DB), p.Container.Terminate(ctx))
}

func (p *Postgres) init(ctx context.Context, schema Schema) error {
	connStr, err := p.Container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return err
	}
	p.ConnStr = connStr

	if schema == SQLMigrations {
		if err = applyMigrations(gormstore.DriverPostgres, connStr); err != nil {
			return err
		}
	}

	db, err := gormstore.Open(ctx, gormstore.DriverPostgres, connStr, gormstore.DefaultPoolOptions())
	if err != nil {
		return err
	}
	p.DB = db

	if schema == AutoMigrate {
		return gormstore.Migrate(ctx, db)
	}
	return nil
}
