package build

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/vocab/internal/common"
	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/source"
)

// SourceSpec is what the user asked to build from.
type SourceSpec struct {
	Paths    []string // "-" is stdin
	Text     string
	HasText  bool
	Globs    []string
	Root     string
	SQLite   string
	Query    string
	Readable bool
}

// Sources resolves spec into sources in a stable order: paths, text, globs, sqlite.
// It only inspects names; nothing is opened.
func Sources(spec SourceSpec, stdin io.Reader) ([]source.Source, error) {
	var sources []source.Source

	usedStdin := false
	for _, raw := range spec.Paths {
		path := common.SanitizePath(raw)
		switch {
		case path == "":
			continue
		case path == "-":
			if usedStdin {
				return nil, fmt.Errorf("%w: stdin given more than once", models.ErrConfiguration)
			}
			usedStdin = true
			sources = append(sources, source.Stream("stdin", stdin))
		case isHTML(path):
			sources = append(sources, source.HTML(path, spec.Readable))
		default:
			sources = append(sources, source.File(path))
		}
	}

	if spec.HasText {
		sources = append(sources, source.Text(spec.Text))
	}

	for _, pattern := range spec.Globs {
		sources = append(sources, source.Glob(spec.Root, pattern))
	}

	if spec.SQLite != "" || spec.Query != "" {
		if spec.SQLite == "" || spec.Query == "" {
			return nil, fmt.Errorf("%w: --sqlite and --query must be used together", models.ErrConfiguration)
		}
		sources = append(sources, source.SQL(common.SanitizePath(spec.SQLite), spec.Query))
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no input given; pass file paths, - for stdin, --text, --glob or --sqlite", models.ErrConfiguration)
	}
	return sources, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
