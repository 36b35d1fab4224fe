package manifest

import "github.com/dtnitsch/vocab/models"

// Summary is the rendered result of a vocabulary build.
// It describes every source that went into the build and lists the
// combined vocabulary in the requested order.
type Summary struct {
	GeneratedAt        string            `json:"generated_at" yaml:"generated_at"`
	Sources            []SourceSummary   `json:"sources" yaml:"sources"`
	BatchSize          int               `json:"batch_size" yaml:"batch_size"`
	Batches            int               `json:"batches" yaml:"batches"`
	TotalWords         int               `json:"total_words" yaml:"total_words"`
	DistinctWords      int               `json:"distinct_words" yaml:"distinct_words"`
	DurationMS         int64             `json:"duration_ms" yaml:"duration_ms"`
	Language           string            `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64           `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	Sort               string            `json:"sort" yaml:"sort"`
	Words              []models.WordItem `json:"words" yaml:"words"`
}

// SourceSummary represents summary information for a single source.
type SourceSummary struct {
	Source        string   `json:"source" yaml:"source"`
	Kind          string   `json:"kind" yaml:"kind"`
	Batches       int      `json:"batches" yaml:"batches"`
	TotalWords    int      `json:"total_words" yaml:"total_words"`
	DistinctWords int      `json:"distinct_words" yaml:"distinct_words"`
	DurationMS    int64    `json:"duration_ms" yaml:"duration_ms"`
	TopKeywords   []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}
