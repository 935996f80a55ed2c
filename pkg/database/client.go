// Package database provides the database client (PostgreSQL or SQLite)
// and embedded schema migrations.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	_ "modernc.org/sqlite"             // Register sqlite driver for database/sql

	"github.com/swarmlet/swarmlet/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Client wraps the Ent client and provides access to the underlying
// database handle for raw SQL paths (event append, queue claims).
type Client struct {
	*ent.Client
	db      *stdsql.DB
	dialect string
}

// DB returns the underlying database connection for health checks and
// direct queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Dialect returns the active SQL dialect ("postgres" or "sqlite").
func (c *Client) Dialect() string {
	return c.dialect
}

// IsPostgres reports whether the client talks to PostgreSQL. Components
// use this to pick the row-lock claim dialect and NOTIFY-based fanout.
func (c *Client) IsPostgres() bool {
	return c.dialect == DialectPostgres
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB, sqlDialect string) *Client {
	return &Client{
		Client:  entClient,
		db:      db,
		dialect: sqlDialect,
	}
}

// NewClient opens the configured database, applies pending migrations,
// and returns the wrapped client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var (
		db  *stdsql.DB
		err error
	)

	switch cfg.Dialect {
	case DialectPostgres:
		db, err = stdsql.Open("pgx", cfg.DSN())
	case DialectSQLite:
		db, err = stdsql.Open("sqlite", cfg.SQLitePath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	default:
		return nil, fmt.Errorf("unsupported database dialect: %q", cfg.Dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Dialect == DialectPostgres {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	} else {
		// modernc sqlite serializes writes; a single connection avoids
		// SQLITE_BUSY churn under concurrent writers.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	entDialect := dialect.Postgres
	if cfg.Dialect == DialectSQLite {
		entDialect = dialect.SQLite
	}
	drv := entsql.OpenDB(entDialect, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(db, cfg); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		Client:  entClient,
		db:      db,
		dialect: cfg.Dialect,
	}, nil
}

// runMigrations applies pending migrations from the embedded per-dialect
// migration set. Migration files are embedded into the binary so production
// deployments never depend on external files.
func runMigrations(db *stdsql.DB, cfg Config) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations/"+cfg.Dialect)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	var m *migrate.Migrate
	switch cfg.Dialect {
	case DialectPostgres:
		d, err := migratepg.WithInstance(db, &migratepg.Config{})
		if err != nil {
			return fmt.Errorf("failed to create postgres migrate driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, d)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
	case DialectSQLite:
		d, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to create sqlite migrate driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", sourceDriver, "swarmlet", d)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which calls db.Close() on the shared *sql.DB — breaking the
	// Ent client that shares the handle.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	return nil
}
