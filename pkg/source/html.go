package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/batch"
	"github.com/dtnitsch/vocab/pkg/parser"
)

// HTMLSource is an HTML document on disk. Its visible text nodes become lines.
type HTMLSource struct {
	path     string
	readable bool
}

// HTML returns a source over the HTML file at path. With readable set, only the
// main article is counted.
func HTML(path string, readable bool) HTMLSource {
	return HTMLSource{path: path, readable: readable}
}

func (s HTMLSource) Kind() Kind { return KindHTML }

func (s HTMLSource) String() string { return s.path }

func (s HTMLSource) Open(_ context.Context, batchSize int) (batch.Reader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", models.ErrConfiguration, batchSize)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}
	defer f.Close()

	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(s.path)}
	if abs, err := filepath.Abs(s.path); err == nil {
		pageURL.Path = filepath.ToSlash(abs)
	}

	p := parser.Parser{Readable: s.readable}
	lines, err := p.ExtractLines(stripBOM(f), pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrDecoding, s.path, err)
	}

	return batch.NewReader(batch.NewSliceScanner(lines), batchSize, nil)
}

func (s HTMLSource) Size() (int64, error) {
	return File(s.path).Size()
}

func (s HTMLSource) Fingerprint() (string, error) {
	fp, err := File(s.path).Fingerprint()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("html:%t:%s", s.readable, fp), nil
}
