// Package store persists completed quiz attempts to a local SQLite
// database so past results can be reviewed. The quiz core never touches
// it; screens save and list attempts best-effort.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle and hands out repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
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

// Attempts returns the attempt history repository.
func (s *Store) Attempts() AttemptRepo {
	return &attemptRepo{db: s.db}
}

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id              TEXT PRIMARY KEY,
	stage_id        TEXT NOT NULL,
	total_correct   INTEGER NOT NULL,
	total_questions INTEGER NOT NULL,
	percentage      INTEGER NOT NULL,
	tier_name       TEXT NOT NULL,
	tier_emoji      TEXT NOT NULL,
	categories      TEXT NOT NULL,
	completed_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS attempts_completed_at ON attempts(completed_at);
`

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
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
// 1. QUIZKIT_DB environment variable
// 2. $XDG_DATA_HOME/quizkit/quizkit.db
// 3. ~/.local/share/quizkit/quizkit.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZKIT_DB"); p != "" {
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

	p := filepath.Join(dataHome, "quizkit", "quizkit.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
