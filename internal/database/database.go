// Package database opens the local SQLite file and provisions its schema.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

// New opens (creating if needed) the database at path and provisions the
// schema. Any failure here is storage.ErrUnavailable: the process cannot
// run without its ledger.
func New(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating database directory: %v", storage.ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrUnavailable, err)
	}

	// WAL lets report reads run while a ledger write is in flight; the busy
	// timeout serializes concurrent write transactions instead of failing
	// them with SQLITE_BUSY.
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %s: %v", storage.ErrUnavailable, pragma, err)
		}
	}

	if err := Provision(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: pinging database: %v", storage.ErrUnavailable, err)
	}

	return db, nil
}

// Provision creates the tables and indexes if absent. Safe to call on every
// start; existing rows are never touched.
func Provision(db *sql.DB) error {
	if db == nil {
		return storage.ErrNotInitialized
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: provisioning schema: %v", storage.ErrUnavailable, err)
	}

	return nil
}
