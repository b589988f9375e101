package gormstoretest

import (
	"context"
	"errors"
	"net"
	"time"

	"fooddelivery/internal/adapters/out/gormstore"

	mysqldriver "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql" // registers the mysql migrate driver
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"
)

// MySQL is a running container with an open gorm handle.
type MySQL struct {
	Container *mysql.MySQLContainer
	DB        *gorm.DB
	DSN       string
}

// StartMySQL runs mysql:8.0 and creates the order tables. The handle uses the
// same driver settings as the service (parseTime, UTC, clientFoundRows).
func StartMySQL(ctx context.Context, schema Schema) (*MySQL, error) {
	container, err := mysql.Run(ctx,
		"mysql:8.0.36",
		mysql.WithDatabase("testdb"),
		mysql.WithUsername("testuser"),
		mysql.WithPassword("testpass"),
	)
	if err != nil {
		return nil, err
	}

	my := &MySQL{Container: container}
	if err = my.init(ctx, schema); err != nil {
		_ = container.Terminate(context.Background())
		return nil, err
	}

	return my, nil
}

// Handle returns the open gorm handle.
func (m *MySQL) Handle() *gorm.DB {
	return m.DB
}

// Truncate empties both tables and resets auto increments. Foreign key checks
// are switched off on one pinned connection for the duration.
func (m *MySQL) Truncate() error {
	return m.DB.Connection(func(conn *gorm.DB) error {
		for _, stmt := range []string{
			"SET FOREIGN_KEY_CHECKS = 0",
			"TRUNCATE TABLE order_items",
			"TRUNCATE TABLE orders",
			"SET FOREIGN_KEY_CHECKS = 1",
		} {
			if err := conn.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Terminate closes the handle and stops the container.
func (m *MySQL) Terminate(ctx context.Context) error {
	return errors.Join(gormstore.Close(m.DB), m.Container.Terminate(ctx))
}

func (m *MySQL) init(ctx context.Context, schema Schema) error {
	host, err := m.Container.Host(ctx)
	if err != nil {
		return err
	}
	port, err := m.Container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		return err
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = "testuser"
	cfg.Passwd = "testpass"
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, port.Port())
	cfg.DBName = "testdb"
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	m.DSN = cfg.FormatDSN()

	if schema == SQLMigrations {
		migrateCfg := cfg.Clone()
		migrateCfg.MultiStatements = true
		if err = applyMigrations(gormstore.DriverMySQL, "mysql://"+migrateCfg.FormatDSN()); err != nil {
			return err
		}
	}

	db, err := gormstore.Open(ctx, gormstore.DriverMySQL, m.DSN, gormstore.DefaultPoolOptions())
	if err != nil {
		return err
	}
	m.DB = db

	if schema == AutoMigrate {
		return gormstore.Migrate(ctx, db)
	}
	return nil
}
