// Package db provides the GORM-backed local store: connection setup, schema
// migration and the long-lived Store handle shared by all repositories.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverSQLite selects the embedded SQLite store (default).
	DriverSQLite = "sqlite"
	// DriverPostgres selects a PostgreSQL server.
	DriverPostgres = "postgres"

	// DefaultSQLitePath is the database file used when no path is configured.
	DefaultSQLitePath = "skillroots.db"

	retryInterval = 3 * time.Second
)

// Config holds the connection settings for the store.
type Config struct {
	Driver string
	// Path is the SQLite database file; ":memory:" opens a private in-memory store.
	Path string

	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance connection name

	ConnectTimeout time.Duration
}

// Opener opens a GORM connection for the given DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the driver specific DSN for cfg.
// For PostgreSQL a Cloud SQL unix socket takes precedence over Host/Port.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		if cfg.InstanceName != "" {
			return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultSQLitePath
	}
	if path == ":memory:" {
		return path
	}
	return path + "?_busy_timeout=5000&_journal_mode=WAL"
}

// OpenerFor returns the Opener for a driver name. Unknown names fall back to SQLite.
func OpenerFor(driver string) Opener {
	cfg := &gorm.Config{TranslateError: true}
	if driver == DriverPostgres {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), cfg)
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
// Attempts are spaced by retryInterval, shortened so that no sleep crosses the deadline.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("connect failed after %v: %w", timeout, err)
		}
		slog.Warn("store connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}
