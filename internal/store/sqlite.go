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

// DocumentName is the blob name holding the knowledge-engine document.
const DocumentName = "knowledge"

// SQLiteStore keeps named blobs in a single SQLite table, one row per name.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates a SQLiteStore at dsn, applying recommended pragmas and
// creating the documents table if missing.
func Open(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS documents (
		name       TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// DB returns the underlying *sql.DB.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Blob returns the named blob backed by this store.
func (s *SQLiteStore) Blob(name string) Blob {
	return &sqliteBlob{db: s.db, name: name}
}

type sqliteBlob struct {
	db   *sql.DB
	name string
}

func (b *sqliteBlob) Get(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE name = ?`, b.name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read document %q: %w", b.name, err)
	}
	return data, true, nil
}

func (b *sqliteBlob) Set(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO documents (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		b.name, data, NowISO())
	if err != nil {
		return fmt.Errorf("write document %q: %w", b.name, err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
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
// 1. ELEVE_DB environment variable
// 2. $XDG_DATA_HOME/eleve/eleve.db
// 3. ~/.local/share/eleve/eleve.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ELEVE_DB"); p != "" {
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

	p := filepath.Join(dataHome, "eleve", "eleve.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
