// Package db reads text rows out of SQLite databases.
package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Vocabulary sources never write
	if _, err := sqlDB.Exec("PRAGMA query_only = ON"); err != nil {
		_ = sqlDB.Close() // Close error less important than PRAGMA error
		return nil, fmt.Errorf("failed to enable query_only: %w", err)
	}

	return sqlDB, nil
}

// Open opens an existing SQLite database read-only.
// Unlike sql.Open it refuses to create a missing file.
func Open(dbPath string) (*DB, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("database path is a directory: %s", dbPath)
	}

	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	return &DB{DB: sqlDB}, nil
}
