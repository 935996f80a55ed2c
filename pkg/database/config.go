package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Config holds database configuration.
type Config struct {
	// Dialect selects postgres or sqlite.
	Dialect string

	// PostgreSQL settings.
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// SQLite settings.
	SQLitePath string

	// Connection pool settings (postgres only).
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the pgx-compatible connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// LoadConfigFromEnv builds a Config from environment variables with
// development defaults.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Dialect:         envOr("DB_DIALECT", DialectPostgres),
		Host:            envOr("DB_HOST", "localhost"),
		Port:            envIntOr("DB_PORT", 5432),
		User:            envOr("DB_USER", "swarmlet"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOr("DB_NAME", "swarmlet"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		SQLitePath:      envOr("DB_SQLITE_PATH", "swarmlet.db"),
		MaxOpenConns:    envIntOr("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envIntOr("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	switch cfg.Dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return Config{}, fmt.Errorf("DB_DIALECT must be %q or %q, got %q",
			DialectPostgres, DialectSQLite, cfg.Dialect)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
