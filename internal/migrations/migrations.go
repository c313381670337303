// Package migrations owns the database schema. SQL files are embedded so the
// binary does not depend on the working directory.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"
	"wareland-api/internal/core/port"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationsDir = "sql"

// Runner applies the embedded goose migrations.
type Runner struct {
	dsn    string
	logger port.LoggerPort
}

func NewRunner(dsn string, logger port.LoggerPort) (*Runner, error) {
	if dsn == "" {
		return nil, errors.New("empty database dsn")
	}
	return &Runner{
		dsn: dsn,
		logger: logger.WithFields(port.Fields{
			"component": "MigrationsRunner",
		}),
	}, nil
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context) error {
	return r.withDB(ctx, func(db *sql.DB) error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		r.logger.Info("Applying migrations", nil)
		if err := goose.UpContext(runCtx, db, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		r.logger.Info("Migrations applied", nil)
		return nil
	})
}

// Status prints applied and pending migrations through goose's logger.
func (r *Runner) Status(ctx context.Context) error {
	return r.withDB(ctx, func(db *sql.DB) error {
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

// Down rolls back the latest migration, or down to targetVersion when it is positive.
func (r *Runner) Down(ctx context.Context, targetVersion int64) error {
	return r.withDB(ctx, func(db *sql.DB) error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if targetVersion > 0 {
			r.logger.Info("Rolling back migrations", port.Fields{"target": targetVersion})
			if err := goose.DownToContext(runCtx, db, migrationsDir, targetVersion); err != nil {
				return fmt.Errorf("rollback to version %d: %w", targetVersion, err)
			}
		} else {
			r.logger.Info("Rolling back latest migration", nil)
			if err := goose.DownContext(runCtx, db, migrationsDir); err != nil {
				return fmt.Errorf("rollback latest migration: %w", err)
			}
		}

		r.logger.Info("Rollback complete", nil)
		return nil
	})
}

func (r *Runner) withDB(ctx context.Context, fn func(*sql.DB) error) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	db, err := sql.Open("pgx", r.dsn)
	if err != nil {
		return fmt.Errorf("open sql connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sql connection: %w", err)
	}

	return fn(db)
}
