package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fooddelivery/internal/adapters/out/gormstore"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logging"

	"github.com/go-sql-driver/mysql"
)

const (
	defaultHTTPPort = "8080"
	defaultDBPort   = "5432"
	defaultSslMode  = "disable"
)

type Config struct {
	HTTPPort   string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DBAutoMigrate bootstraps the schema with gorm on startup.
	DBAutoMigrate bool

	// PendingOrderTTL is how long an order may stay pending without a rider.
	// Zero disables the expiry job.
	PendingOrderTTL           time.Duration
	PendingOrderSweepSchedule string

	LogLevel string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// godotenv has loaded an optional .env file.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:                  valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBDriver:                  valueOr(getenv("DB_DRIVER"), gormstore.DriverPostgres),
		DBHost:                    getenv("DB_HOST"),
		DBPort:                    getenv("DB_PORT"),
		DBUser:                    getenv("DB_USER"),
		DBPassword:                getenv("DB_PASSWORD"),
		DBName:                    getenv("DB_NAME"),
		DBSslMode:                 valueOr(getenv("DB_SSLMODE"), defaultSslMode),
		DBAutoMigrate:             true,
		PendingOrderSweepSchedule: getenv("PENDING_ORDER_SWEEP_SCHEDULE"),
		LogLevel:                  getenv("LOG_LEVEL"),
	}

	if config.DBPort == "" {
		config.DBPort = defaultDBPort
		if config.DBDriver == gormstore.DriverMySQL {
			config.DBPort = "3306"
		}
	}

	var err error
	if v := getenv("DB_AUTO_MIGRATE"); v != "" {
		if config.DBAutoMigrate, err = strconv.ParseBool(v); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("DB_AUTO_MIGRATE", err)
		}
	}
	if v := getenv("PENDING_ORDER_TTL"); v != "" {
		if config.PendingOrderTTL, err = time.ParseDuration(v); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("PENDING_ORDER_TTL", err)
		}
	}

	return config, config.Validate()
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var errList []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errList = append(errList, errs.NewValueIsInvalidError("HTTP_PORT"))
	}
	if c.DBDriver != gormstore.DriverPostgres && c.DBDriver != gormstore.DriverMySQL {
		errList = append(errList, errs.NewValueIsInvalidError("DB_DRIVER"))
	}
	if c.DBHost == "" {
		errList = append(errList, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBUser == "" {
		errList = append(errList, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.PendingOrderTTL < 0 {
		errList = append(errList, errs.NewValueIsInvalidError("PENDING_ORDER_TTL"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	return errors.Join(errList...)
}

// DSN is the database/sql connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == gormstore.DriverMySQL {
		return c.mysqlConfig().FormatDSN()
	}

	pairs := []string{
		"host=" + quoteDSNValue(c.DBHost),
		"port=" + quoteDSNValue(c.DBPort),
		"user=" + quoteDSNValue(c.DBUser),
		"password=" + quoteDSNValue(c.DBPassword),
		"dbname=" + quoteDSNValue(c.DBName),
		"sslmode=" + quoteDSNValue(c.DBSslMode),
	}
	return strings.Join(pairs, " ")
}

// MigrationURL is the database URL understood by golang-migrate.
func (c Config) MigrationURL() string {
	if c.DBDriver == gormstore.DriverMySQL {
		cfg := c.mysqlConfig()
		cfg.MultiStatements = true
		return "mysql://" + cfg.FormatDSN()
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) HTTPAddress() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

func (c Config) mysqlConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = c.DBUser
	cfg.Passwd = c.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	cfg.DBName = c.DBName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	// Affected rows count matched rows, as on PostgreSQL.
	cfg.ClientFoundRows = true
	return cfg
}

func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
