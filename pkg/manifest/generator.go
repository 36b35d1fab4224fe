// Package manifest summarizes and renders finished vocabulary builds.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/mapreduce"
)

// SourceTopKeywords is how many keywords are listed per source.
const SourceTopKeywords = 10

// BuildResult is the outcome of building one source.
type BuildResult struct {
	Source     string
	Kind       string
	Vocabulary models.Vocabulary
	Batches    int
	Duration   time.Duration
}

// Options controls how the combined vocabulary is presented.
type Options struct {
	BatchSize          int
	Sort               models.SortOption
	Top                int           // 0 lists every word
	Duration           time.Duration // wall time of the whole run
	Language           string
	LanguageConfidence float64
}

// GenerateSummary creates a summary of the builds and their combined vocabulary.
// combined is not modified; ordering is applied to a projection of it.
func GenerateSummary(results []BuildResult, combined models.Vocabulary, opts Options) Summary {
	summary := Summary{
		GeneratedAt:        time.Now().Format(time.RFC3339),
		BatchSize:          opts.BatchSize,
		DurationMS:         opts.Duration.Milliseconds(),
		TotalWords:         combined.Total(),
		DistinctWords:      combined.Len(),
		Language:           opts.Language,
		LanguageConfidence: opts.LanguageConfidence,
		Sort:               string(opts.Sort),
		Sources:            make([]SourceSummary, 0, len(results)),
	}

	for _, result := range results {
		summary.Batches += result.Batches
		summary.Sources = append(summary.Sources, SourceSummary{
			Source:        result.Source,
			Kind:          result.Kind,
			Batches:       result.Batches,
			TotalWords:    result.Vocabulary.Total(),
			DistinctWords: result.Vocabulary.Len(),
			DurationMS:    result.Duration.Milliseconds(),
			TopKeywords:   mapreduce.TopKeywords(result.Vocabulary, SourceTopKeywords),
		})
	}

	words := combined.Sorted(opts.Sort)
	if opts.Top > 0 && len(words) > opts.Top {
		words = words[:opts.Top]
	}
	summary.Words = words

	return summary
}

// Write renders summary to w as "yaml", "json" or "text".
// The text format is the word list alone, one numbered entry per line.
func Write(w io.Writer, summary Summary, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("error marshalling summary: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("error marshalling summary: %w", err)
		}
		return nil
	case "text":
		return mapreduce.PrintItems(w, summary.Words)
	default:
		return fmt.Errorf("%w: unknown output format %q", models.ErrConfiguration, format)
	}
}
