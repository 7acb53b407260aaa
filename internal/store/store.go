// Package store persists learner state in a local SQLite database:
// weak knowledge points, completed practice records, and the snapshot
// of an in-flight session.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and hands out repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas and
// creates missing tables. Use ":memory:" for an ephemeral store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WeakPoints returns the weak-point repository backed by this store.
func (s *Store) WeakPoints() *WeakPointRepo {
	return &WeakPointRepo{db: s.db}
}

// Records returns the practice-record repository backed by this store.
func (s *Store) Records() *RecordRepo {
	return &RecordRepo{db: s.db}
}

// Sessions returns the session-snapshot repository backed by this store.
func (s *Store) Sessions() *SessionRepo {
	return &SessionRepo{db: s.db}
}

// Reset wipes all learner data: weak points, practice records and any
// in-flight session snapshot. The default weak points reseed on the
// next List call.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"weak_points", "practice_records", "session_snapshot"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEARNLOOP_DB environment variable
// 2. $XDG_DATA_HOME/learnloop/learnloop.db
// 3. ~/.local/share/learnloop/learnloop.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEARNLOOP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "learnloop", "learnloop.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
