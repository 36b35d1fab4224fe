package build

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/caching"
	"github.com/dtnitsch/vocab/pkg/manifest"
	"github.com/dtnitsch/vocab/pkg/source"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestSources(t *testing.T) {
	stdin := strings.NewReader("from stdin")

	tests := []struct {
		name      string
		spec      SourceSpec
		wantKinds []source.Kind
		wantErr   error
	}{
		{
			name:      "paths by extension",
			spec:      SourceSpec{Paths: []string{"a.txt", "b.HTML", "c.htm", "-"}},
			wantKinds: []source.Kind{source.KindFile, source.KindHTML, source.KindHTML, source.KindStream},
		},
		{
			name:      "every kind",
			spec:      SourceSpec{Paths: []string{"a.txt"}, Text: "x", HasText: true, Globs: []string{"*.md", "*.txt"}, SQLite: "n.db", Query: "SELECT body FROM notes"},
			wantKinds: []source.Kind{source.KindFile, source.KindText, source.KindGlob, source.KindGlob, source.KindSQL},
		},
		{
			name:      "empty text is still an input",
			spec:      SourceSpec{HasText: true},
			wantKinds: []source.Kind{source.KindText},
		},
		{name: "nothing", spec: SourceSpec{}, wantErr: models.ErrConfiguration},
		{name: "stdin twice", spec: SourceSpec{Paths: []string{"-", "-"}}, wantErr: models.ErrConfiguration},
		{name: "sqlite without query", spec: SourceSpec{SQLite: "n.db"}, wantErr: models.ErrConfiguration},
		{name: "query without sqlite", spec: SourceSpec{Query: "SELECT 1"}, wantErr: models.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sources(tt.spec, stdin)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Sources() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sources() error = %v", err)
			}
			if len(got) != len(tt.wantKinds) {
				t.Fatalf("Sources() returned %d sources, want %d", len(got), len(tt.wantKinds))
			}
			for i, src := range got {
				if src.Kind() != tt.wantKinds[i] {
					t.Errorf("source %d kind = %s, want %s", i, src.Kind(), tt.wantKinds[i])
				}
			}
		})
	}
}

func runJSON(t *testing.T, cfg *models.Config, sources []source.Source) manifest.Summary {
	t.Helper()
	cfg.Output.Format = "json"

	var out bytes.Buffer
	if err := Run(context.Background(), discardLogger(), cfg, sources, caching.NewCache(0), nil, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var summary manifest.Summary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("Run() output is not JSON: %v\n%s", err, out.String())
	}
	return summary
}

func TestRun_MergesSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("three two\nTHREE"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := models.DefaultConfig()
	cfg.Build.BatchSize = 1
	cfg.Output.Top = 0

	summary := runJSON(t, cfg, []source.Source{
		source.Text("two one Three"),
		source.File(path),
	})

	if len(summary.Sources) != 2 {
		t.Fatalf("Sources = %d, want 2", len(summary.Sources))
	}
	want := []models.WordItem{{Word: "three", Count: 3}, {Word: "two", Count: 2}, {Word: "one", Count: 1}}
	if fmt.Sprint(summary.Words) != fmt.Sprint(want) {
		t.Errorf("Words = %v, want %v", summary.Words, want)
	}
	if summary.Batches != 3 {
		t.Errorf("Batches = %d, want 3", summary.Batches)
	}
}

func TestRun_RepeatedFileServedFromCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("a b a"), 0644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cache := caching.NewCache(0)

	cfg := models.DefaultConfig()
	cfg.Output.Format = "json"
	sources := []source.Source{source.File(path), source.Text("c"), source.File(path), source.File(path)}

	var out bytes.Buffer
	if err := Run(context.Background(), logger, cfg, sources, cache, nil, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var summary manifest.Summary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.TotalWords != 10 {
		t.Errorf("TotalWords = %d, want 10", summary.TotalWords)
	}
	if len(summary.Sources) != 4 {
		t.Errorf("Sources = %d, want 4", len(summary.Sources))
	}

	if hits := strings.Count(logs.String(), "Vocabulary served from cache"); hits != 2 {
		t.Errorf("cache hits = %d, want 2\n%s", hits, logs.String())
	}
	// One build for the file, one for the text.
	if builds := strings.Count(logs.String(), "Starting vocabulary build"); builds != 2 {
		t.Errorf("builds started = %d, want 2", builds)
	}
	if cache.Len() != 2 {
		t.Errorf("cache.Len() = %d, want 2", cache.Len())
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Config)
		want    models.SortOption
		wantErr bool
	}{
		{name: "defaults", mutate: func(*models.Config) {}, want: models.SortFrequencyDescending},
		{name: "sort ignores case", mutate: func(c *models.Config) { c.Output.Sort = "ALPHABETICAL" }, want: models.SortAlphabetical},
		{name: "zero batch size", mutate: func(c *models.Config) { c.Build.BatchSize = 0 }, wantErr: true},
		{name: "negative top", mutate: func(c *models.Config) { c.Output.Top = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultConfig()
			tt.mutate(cfg)
			got, err := validateConfig(cfg)
			if tt.wantErr {
				if !errors.Is(err, models.ErrConfiguration) {
					t.Errorf("validateConfig() error = %v, want ErrConfiguration", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("validateConfig() = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	missing := source.File(filepath.Join(t.TempDir(), "missing.txt"))

	tests := []struct {
		name    string
		mutate  func(*models.Config)
		sources []source.Source
		wantErr error
	}{
		{"bad batch size", func(c *models.Config) { c.Build.BatchSize = 0 }, []source.Source{source.Text("x")}, models.ErrConfiguration},
		{"bad format", func(c *models.Config) { c.Output.Format = "xml" }, []source.Source{source.Text("x")}, models.ErrConfiguration},
		{"bad sort", func(c *models.Config) { c.Output.Sort = "random" }, []source.Source{source.Text("x")}, models.ErrConfiguration},
		{"missing file", func(*models.Config) {}, []source.Source{source.Text("x"), missing}, models.ErrSourceUnavailable},
		{"bad bytes", func(*models.Config) {}, []source.Source{source.Text("ok\n\xff\xfe")}, models.ErrDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultConfig()
			tt.mutate(cfg)

			var out bytes.Buffer
			err := Run(context.Background(), discardLogger(), cfg, tt.sources, caching.NewCache(0), nil, &out)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("Run() wrote output on failure: %q", out.String())
			}
		})
	}
}

func TestFirstCause(t *testing.T) {
	cause := fmt.Errorf("b.txt: %w", models.ErrSourceUnavailable)
	canceled := fmt.Errorf("a.txt: %w", context.Canceled)

	if got := firstCause([]error{canceled, cause}); got != cause {
		t.Errorf("firstCause() = %v, want %v", got, cause)
	}
	if got := firstCause([]error{canceled}); got != canceled {
		t.Errorf("firstCause() = %v, want %v", got, canceled)
	}
	if got := firstCause(nil); got != nil {
		t.Errorf("firstCause(nil) = %v", got)
	}
}

func TestApplyFlags(t *testing.T) {
	set := flag.NewFlagSet("build", flag.ContinueOnError)
	for _, f := range Flags() {
		if err := f.Apply(set); err != nil {
			t.Fatal(err)
		}
	}
	args := []string{"--batch-size", "7", "--sort", "alphabetical", "--format", "TEXT", "--stem", "--top", "0"}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	c := cli.NewContext(cli.NewApp(), set, nil)

	cfg := models.DefaultConfig()
	applyFlags(c, cfg)

	if cfg.Build.BatchSize != 7 {
		t.Errorf("BatchSize = %d, want 7", cfg.Build.BatchSize)
	}
	if cfg.Output.Sort != "alphabetical" || cfg.Output.Format != "text" || cfg.Output.Top != 0 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Build.Stem || cfg.Build.FilterStopwords {
		t.Errorf("Build = %+v", cfg.Build)
	}
	// Unset flags keep config values.
	if cfg.Build.Workers != 0 || cfg.Logging.Level != "info" {
		t.Errorf("unset flags changed config: %+v", cfg)
	}
}
