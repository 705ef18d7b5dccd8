package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // database/sql driver for golang-migrate
)

// Schema holds the orders, order_items and event_sequence migrations.
//
//go:embed migrations/*.sql
var Schema embed.FS

// RunMigrations brings the order store schema up to date.
func RunMigrations(dsn string, logger *log.Logger) error {
	return Migrate(dsn, Schema, "migrations", logger)
}

// Migrate applies every pending up migration found in dir of src.
func Migrate(dsn string, src fs.FS, dir string, logger *log.Logger) error {
	source, err := iofs.New(src, dir)
	if err != nil {
		return fmt.Errorf("migration source %q: %w", dir, err)
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	from := schemaVersion(m)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up from %s: %w", from, err)
	}

	to := schemaVersion(m)
	if from == to {
		logger.Printf("order schema up to date at %s", to)
	} else {
		logger.Printf("order schema migrated %s -> %s", from, to)
	}
	return nil
}

func schemaVersion(m *migrate.Migrate) string {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return "empty"
	case err != nil:
		return "unknown"
	case dirty:
		return fmt.Sprintf("v%d (dirty)", v)
	default:
		return fmt.Sprintf("v%d", v)
	}
}
