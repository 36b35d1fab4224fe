// Package builder is the entry point for building a vocabulary from a source.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/aggregator"
	"github.com/dtnitsch/vocab/pkg/analytics"
	"github.com/dtnitsch/vocab/pkg/batch"
	"github.com/dtnitsch/vocab/pkg/caching"
	"github.com/dtnitsch/vocab/pkg/source"
)

// Result is the single value delivered by BuildAsync.
type Result struct {
	Vocabulary models.Vocabulary
	Err        error
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithCache memoizes vocabularies of sources that implement source.Fingerprinter.
func WithCache(c *caching.Cache) Option {
	return func(b *Builder) { b.cache = c }
}

// WithProgress registers a callback run after each batch is merged.
func WithProgress(fn func(batch.Batch)) Option {
	return func(b *Builder) { b.progress = fn }
}

// WithMapper replaces the tokenizer. Builds using a custom mapper bypass the cache.
func WithMapper(m aggregator.Mapper) Option {
	return func(b *Builder) { b.mapper = m }
}

// Builder builds vocabularies with a fixed configuration. It holds no per-build state
// and may be used for any number of builds, concurrently.
type Builder struct {
	cfg      models.BuildConfig
	logger   *slog.Logger
	cache    *caching.Cache
	progress func(batch.Batch)
	mapper   aggregator.Mapper
}

// New returns a Builder for cfg. The configuration is validated by each build.
func New(cfg models.BuildConfig, opts ...Option) *Builder {
	b := &Builder{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}
	return b
}

// Build reads src to exhaustion and returns its vocabulary.
// Configuration errors are reported before the source is touched.
func (b *Builder) Build(ctx context.Context, src source.Source) (models.Vocabulary, error) {
	if err := b.cfg.Validate(); err != nil {
		b.logger.Error("Invalid build configuration", "error", err)
		return models.Vocabulary{}, err
	}
	if src == nil {
		return models.Vocabulary{}, fmt.Errorf("%w: no source", models.ErrConfiguration)
	}

	logger := b.logger.With("source", src.String(), "kind", string(src.Kind()))

	key := b.cacheKey(src)
	if key != "" {
		if v, ok := b.cache.Get(key); ok {
			logger.Info("Vocabulary served from cache", "distinct_words", v.Len())
			return v, nil
		}
	}

	start := time.Now()
	logger.Info("Starting vocabulary build", "batch_size", b.cfg.BatchSize, "workers", b.cfg.Workers)

	r, err := src.Open(ctx, b.cfg.BatchSize)
	if err != nil {
		logger.Error("Failed to open source", "error", err, "error_type", models.ClassifyError(err))
		return models.Vocabulary{}, err
	}

	batches := 0
	agg := &aggregator.Aggregator{
		Workers: b.cfg.Workers,
		Map:     b.mapperFor(),
		Logger:  logger,
		Progress: func(bt batch.Batch) {
			batches++
			if b.progress != nil {
				b.progress(bt)
			}
		},
	}

	v, err := agg.Aggregate(ctx, r)
	if err != nil {
		logger.Error("Vocabulary build failed", "error", err, "error_type", models.ClassifyError(err))
		return models.Vocabulary{}, err
	}

	if key != "" {
		b.cache.Set(key, v)
	}

	logger.Info("Vocabulary build finished",
		"batches", batches,
		"distinct_words", v.Len(),
		"total_words", v.Total(),
		"duration_ms", time.Since(start).Milliseconds())
	return v, nil
}

// BuildAsync runs Build in a goroutine. The returned channel yields exactly one Result
// and is then closed.
func (b *Builder) BuildAsync(ctx context.Context, src source.Source) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		v, err := b.Build(ctx, src)
		out <- Result{Vocabulary: v, Err: err}
	}()
	return out
}

func (b *Builder) mapperFor() aggregator.Mapper {
	if b.mapper != nil {
		return b.mapper
	}
	return aggregator.AnalyticsMapper(&analytics.Analytics{
		FilterStopwords: b.cfg.FilterStopwords,
		Stem:            b.cfg.Stem,
	})
}

// cacheKey returns "" when the build cannot be cached. Batch size and worker count
// do not change the result and are left out.
func (b *Builder) cacheKey(src source.Source) string {
	if b.cache == nil || b.mapper != nil {
		return ""
	}
	fp, ok := src.(source.Fingerprinter)
	if !ok {
		return ""
	}
	id, err := fp.Fingerprint()
	if err != nil {
		b.logger.Debug("Source not cacheable", "source", src.String(), "error", err)
		return ""
	}
	return fmt.Sprintf("%s|stopwords=%t|stem=%t", id, b.cfg.FilterStopwords, b.cfg.Stem)
}
