// Package gormstore is the relational store of the order service: it opens the
// database handle, bootstraps the schema and provides the unit of work through
// which use cases reach the order repository.
//
// Both PostgreSQL and MySQL are supported. The *sql.DB underneath gorm is opened
// through otelsql so every statement is instrumented.
package gormstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fooddelivery/internal/adapters/out/gormstore/orderrepo"

	"github.com/XSAM/otelsql"
	_ "github.com/go-sql-driver/mysql" // registers the "mysql" database/sql driver
	_ "github.com/lib/pq"              // registers the "postgres" database/sql driver
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// PoolOptions bounds the shared connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolOptions mirrors a small service pool.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Open connects to the database, verifies the connection and returns the gorm handle.
// The caller owns the handle and releases it with Close.
func Open(ctx context.Context, driver, dsn string, pool PoolOptions) (*gorm.DB, error) {
	sqlDB, dialector, err := openInstrumented(driver, dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if _, err = otelsql.RegisterDBStatsMetrics(sqlDB, otelsql.WithAttributes(systemAttribute(driver))); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("register db stats metrics: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the orders and order_items tables. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
}

func openInstrumented(driver, dsn string) (*sql.DB, gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, DriverMySQL:
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlDB, err := otelsql.Open(driver, dsn, otelsql.WithAttributes(systemAttribute(driver)))
	if err != nil {
		return nil, nil, err
	}

	if driver == DriverMySQL {
		return sqlDB, mysql.New(mysql.Config{Conn: sqlDB}), nil
	}
	return sqlDB, postgres.New(postgres.Config{Conn: sqlDB}), nil
}

func systemAttribute(driver string) attribute.KeyValue {
	if driver == DriverMySQL {
		return semconv.DBSystemMySQL
	}
	return semconv.DBSystemPostgreSQL
}
