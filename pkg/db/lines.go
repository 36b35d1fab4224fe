package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Lines streams the single text column of a query result, one row per line.
// NULL values read as empty lines. It satisfies batch.Scanner.
type Lines struct {
	rows *sql.Rows
	text string
	err  error
}

// Lines runs query and returns an iterator over its rows.
// The query must select exactly one column.
func (db *DB) Lines(ctx context.Context, query string, args ...any) (*Lines, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	cols, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	if len(cols) != 1 {
		_ = rows.Close()
		return nil, fmt.Errorf("query must select exactly one column, got %d", len(cols))
	}

	return &Lines{rows: rows}, nil
}

// Scan advances to the next row.
func (l *Lines) Scan() bool {
	if l.err != nil || !l.rows.Next() {
		return false
	}
	var s sql.NullString
	if err := l.rows.Scan(&s); err != nil {
		l.err = fmt.Errorf("failed to scan row: %w", err)
		return false
	}
	l.text = s.String
	return true
}

// Text returns the current row.
func (l *Lines) Text() string {
	return l.text
}

// Err returns the first error hit while iterating.
func (l *Lines) Err() error {
	if l.err != nil {
		return l.err
	}
	return l.rows.Err()
}

// Close releases the result set.
func (l *Lines) Close() error {
	return l.rows.Close()
}
