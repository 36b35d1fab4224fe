package source

import (
	"context"
	"fmt"
	"os"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/batch"
)

// FileSource is a line-oriented text file.
type FileSource struct {
	path string
}

// File returns a source reading the file at path.
func File(path string) FileSource {
	return FileSource{path: path}
}

func (s FileSource) Kind() Kind { return KindFile }

func (s FileSource) String() string { return s.path }

func (s FileSource) Open(_ context.Context, batchSize int) (batch.Reader, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}
	return batch.NewReader(batch.NewLineScanner(stripBOM(f)), batchSize, f)
}

func (s FileSource) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}
	return info.Size(), nil
}

// Fingerprint identifies the file by path, size and modification time.
func (s FileSource) Fingerprint() (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}
	return fmt.Sprintf("file:%s:%d:%d", s.path, info.Size(), info.ModTime().UnixNano()), nil
}
