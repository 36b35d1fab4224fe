package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/batch"
)

// GlobSource is every regular file under Root matching a doublestar pattern
// (e.g. "**/*.txt"). Files are read in lexical order and batched one file at a time,
// so no batch spans two files.
type GlobSource struct {
	root    string
	pattern string
}

// Glob returns a source over the files under root matching pattern.
func Glob(root, pattern string) GlobSource {
	if root == "" {
		root = "."
	}
	return GlobSource{root: root, pattern: pattern}
}

func (s GlobSource) Kind() Kind { return KindGlob }

func (s GlobSource) String() string {
	return filepath.Join(s.root, s.pattern)
}

// Files resolves the pattern to file sources. No match is reported as ErrSourceUnavailable.
func (s GlobSource) Files() ([]FileSource, error) {
	if !doublestar.ValidatePattern(s.pattern) {
		return nil, fmt.Errorf("%w: invalid glob pattern %q", models.ErrConfiguration, s.pattern)
	}

	fsys := os.DirFS(s.root)
	matches, err := doublestar.Glob(fsys, s.pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}
	sort.Strings(matches)

	files := make([]FileSource, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, File(filepath.Join(s.root, filepath.FromSlash(m))))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files match %s", models.ErrSourceUnavailable, s)
	}
	return files, nil
}

func (s GlobSource) Open(ctx context.Context, batchSize int) (batch.Reader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", models.ErrConfiguration, batchSize)
	}
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	openers := make([]batch.Opener, len(files))
	for i, f := range files {
		openers[i] = func() (batch.Reader, error) {
			return f.Open(ctx, batchSize)
		}
	}
	return batch.Chain(openers...), nil
}

func (s GlobSource) Size() (int64, error) {
	files, err := s.Files()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, f := range files {
		n, err := f.Size()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (s GlobSource) Fingerprint() (string, error) {
	files, err := s.Files()
	if err != nil {
		return "", err
	}
	parts := make([]string, len(files))
	for i, f := range files {
		fp, err := f.Fingerprint()
		if err != nil {
			return "", err
		}
		parts[i] = fp
	}
	return "glob:" + strings.Join(parts, "|"), nil
}
