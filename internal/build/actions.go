package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/vocab/internal/common"
	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/batch"
	"github.com/dtnitsch/vocab/pkg/builder"
	"github.com/dtnitsch/vocab/pkg/caching"
	"github.com/dtnitsch/vocab/pkg/detector"
	"github.com/dtnitsch/vocab/pkg/manifest"
	"github.com/dtnitsch/vocab/pkg/source"
)

// BuildAction implements `vocab build`.
func BuildAction(c *cli.Context) error {
	load := models.LoadConfig
	if c.IsSet("config") {
		load = models.LoadRequiredConfig
	}
	cfg, err := load(c.String("config"))
	if err != nil {
		logger := common.NewLogger(os.Stderr, "", c.Bool("quiet"), c.Bool("verbose"))
		logger.Error("failed to load config", "path", c.String("config"), "error", err)
		return cli.Exit(common.UserMessage(err), common.ExitCode(err))
	}
	applyFlags(c, cfg)

	logger := common.NewLogger(os.Stderr, cfg.Logging.Level, c.Bool("quiet"), c.Bool("verbose"))

	if _, err := validateConfig(cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		return cli.Exit(common.UserMessage(err), common.ExitCode(err))
	}

	sources, err := Sources(SourceSpec{
		Paths:    c.Args().Slice(),
		Text:     c.String("text"),
		HasText:  c.IsSet("text"),
		Globs:    common.SplitList(c.String("glob")),
		Root:     c.String("root"),
		SQLite:   c.String("sqlite"),
		Query:    c.String("query"),
		Readable: c.Bool("readable"),
	}, os.Stdin)
	if err != nil {
		logger.Error("invalid input selection", "error", err)
		return cli.Exit(common.UserMessage(err), common.ExitCode(err))
	}

	var bar *progress
	if c.Bool("progress") {
		bar = newProgress(os.Stderr, sources)
	}

	if err := Run(c.Context, logger, cfg, sources, caching.NewCache(0), bar, os.Stdout); err != nil {
		logger.Error("vocabulary build failed", "error", err, "error_type", models.ClassifyError(err))
		return cli.Exit(common.UserMessage(err), common.ExitCode(err))
	}
	return nil
}

// validateConfig checks every setting without touching the filesystem.
func validateConfig(cfg *models.Config) (models.SortOption, error) {
	if err := cfg.Build.Validate(); err != nil {
		return "", err
	}
	if err := cfg.Output.Validate(); err != nil {
		return "", err
	}
	return models.ParseSortOption(cfg.Output.Sort)
}

// fingerprint returns "" for sources that cannot be identified up front.
func fingerprint(src source.Source) string {
	fp, ok := src.(source.Fingerprinter)
	if !ok {
		return ""
	}
	id, err := fp.Fingerprint()
	if err != nil {
		return ""
	}
	return id
}

// Run builds every distinct source concurrently, merges the results in source order and
// writes the summary to w. A source listed again is built after its first occurrence
// finishes, so it is served from cache. Nothing is written unless every build succeeds.
func Run(ctx context.Context, logger *slog.Logger, cfg *models.Config, sources []source.Source, cache *caching.Cache, bar *progress, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sortOpt, err := validateConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	logger.Info("Starting build", "sources", len(sources), "batch_size", cfg.Build.BatchSize, "workers", cfg.Build.Workers)

	type pending struct {
		src     source.Source
		b       *builder.Builder
		batches *int
		start   time.Time
		result  <-chan builder.Result // nil for repeats, built once the first copy is done
	}

	seen := make(map[string]bool)
	jobs := make([]pending, len(sources))
	for i, src := range sources {
		batches := new(int)
		b := builder.New(cfg.Build,
			builder.WithLogger(logger),
			builder.WithCache(cache),
			builder.WithProgress(func(bt batch.Batch) {
				*batches++
				bar.add(bt)
			}),
		)
		jobs[i] = pending{src: src, b: b, batches: batches}

		if key := fingerprint(src); key != "" {
			if seen[key] {
				logger.Debug("Repeated source", "source", src.String())
				continue
			}
			seen[key] = true
		}
		jobs[i].start = time.Now()
		jobs[i].result = b.BuildAsync(ctx, src)
	}

	results := make([]manifest.BuildResult, 0, len(jobs))
	var combined models.Vocabulary
	var errs []error
	for _, job := range jobs {
		var res builder.Result
		if job.result != nil {
			res = <-job.result
		} else {
			if len(errs) > 0 {
				continue
			}
			job.start = time.Now()
			v, err := job.b.Build(ctx, job.src)
			res = builder.Result{Vocabulary: v, Err: err}
		}
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", job.src, res.Err))
			cancel()
			continue
		}
		combined = combined.Merge(res.Vocabulary)
		results = append(results, manifest.BuildResult{
			Source:     job.src.String(),
			Kind:       string(job.src.Kind()),
			Vocabulary: res.Vocabulary,
			Batches:    *job.batches,
			Duration:   time.Since(job.start),
		})
	}
	bar.finish()
	if err := firstCause(errs); err != nil {
		return err
	}

	opts := manifest.Options{
		BatchSize: cfg.Build.BatchSize,
		Sort:      sortOpt,
		Top:       cfg.Output.Top,
		Duration:  time.Since(start),
	}
	if cfg.Output.DetectLanguage {
		detection := detector.New().Detect(combined)
		opts.Language = detection.Language
		opts.LanguageConfidence = detection.Confidence
		logger.Debug("Language detected", "language", detection.Language, "confidence", detection.Confidence)
	}

	summary := manifest.GenerateSummary(results, combined, opts)
	logger.Info("Build finished",
		"sources", len(results),
		"batches", summary.Batches,
		"distinct_words", summary.DistinctWords,
		"total_words", summary.TotalWords,
		"duration_ms", time.Since(start).Milliseconds())

	return manifest.Write(w, summary, cfg.Output.Format)
}

// firstCause picks the error that stopped the run. Builds canceled because a sibling
// failed report context.Canceled, so those come last.
func firstCause(errs []error) error {
	for _, err := range errs {
		if !errors.Is(err, context.Canceled) {
			return err
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
