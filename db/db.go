package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"comment_monitor/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

var (
	DB *sql.DB // process-wide connection pool, set by Init
)

// Init opens the configured database, tunes the pool and stores it in DB.
func Init(cfg *config.Config) error {
	conn, err := Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}

	if cfg.DB.Driver == "sqlite" {
		// a single connection keeps ":memory:" databases shared and writes serialized
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		conn.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetime) * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("ping %s: %w", cfg.DB.Driver, err)
	}

	DB = conn
	return nil
}

// Open maps our driver names to database/sql driver names and opens a pool.
func Open(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty dsn for driver %q", driver)
	}
	name, err := sqlDriverName(driver)
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return conn, nil
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate applies the embedded schema for the driver. Statements are idempotent.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	if _, err := sqlDriverName(driver); err != nil {
		return err
	}
	raw, err := migrations.ReadFile("migrations/" + driver + ".sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	// drivers differ on multi-statement support, so run one statement at a time
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
