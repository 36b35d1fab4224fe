package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/batch"
	"github.com/dtnitsch/vocab/pkg/db"
)

// SQLSource is the result of a single-column query against a SQLite database.
// Each row is one line.
type SQLSource struct {
	path  string
	query string
}

// SQL returns a source running query against the database file at path.
func SQL(path, query string) SQLSource {
	return SQLSource{path: path, query: query}
}

func (s SQLSource) Kind() Kind { return KindSQL }

func (s SQLSource) String() string {
	return fmt.Sprintf("%s: %s", s.path, s.query)
}

func (s SQLSource) Open(ctx context.Context, batchSize int) (batch.Reader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", models.ErrConfiguration, batchSize)
	}
	if s.query == "" {
		return nil, fmt.Errorf("%w: sql source needs a query", models.ErrConfiguration)
	}

	database, err := db.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}

	lines, err := database.Lines(ctx, s.query)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}

	closer := closerFunc(func() error {
		return errors.Join(lines.Close(), database.Close())
	})
	return batch.NewReader(lines, batchSize, closer)
}

func (s SQLSource) Size() (int64, error) {
	return File(s.path).Size()
}

func (s SQLSource) Fingerprint() (string, error) {
	fp, err := File(s.path).Fingerprint()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sql:%s:%x", fp, s.query), nil
}
