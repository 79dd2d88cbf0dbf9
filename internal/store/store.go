// Package store provides the SQLite-backed devis numbering sequence.
// Quotes themselves are never persisted; only the per-day counter behind
// numbers like D20260831-001 lives here, so reissuing a quote on the same
// day can never reuse a number.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS devis_sequence (
    day        TEXT PRIMARY KEY,
    last_seq   INTEGER NOT NULL,
    updated_at TEXT NOT NULL
);
`

// Store wraps the numbering database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant location of the numbering database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "devia", "devia.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "devia", "devia.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening devis db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NextNumber allocates the next devis number for the given date, in the
// form D20260831-001. The counter restarts at 001 each day.
func (s *Store) NextNumber(day time.Time) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	key := day.Format("20060102")

	var last int
	err = tx.QueryRow("SELECT last_seq FROM devis_sequence WHERE day = ?", key).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}

	seq := last + 1
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT INTO devis_sequence (day, last_seq, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET last_seq = excluded.last_seq, updated_at = excluded.updated_at`,
		key, seq, now)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return fmt.Sprintf("D%s-%03d", key, seq), nil
}
