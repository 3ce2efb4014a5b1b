package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mfreitas/leetrack/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens the database at path and applies pending migrations.
func Open(path string) (*sql.DB, error) {
	log := logger.Default().WithPrefix("sqlite")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Info("opening database: %s", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	db.SetMaxOpenConns(1) // SQLite best practice for single writer

	if err := Migrate(context.Background(), db); err != nil {
		log.Error("failed to apply migrations: %v", err)
		db.Close()
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

// Migrate applies all unapplied migrations in lexical order.
func Migrate(ctx context.Context, db *sql.DB) error {
	log := logger.Default().WithPrefix("sqlite")

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		var n int
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&n)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		log.Info("applying migration: %s", version)
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
	}
	return nil
}
