// Package aggregator tokenizes the batches of a reader concurrently and reduces the
// partial vocabularies into one.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/analytics"
	"github.com/dtnitsch/vocab/pkg/batch"
	"github.com/dtnitsch/vocab/pkg/mapreduce"
)

// Mapper turns the text of one batch into a partial vocabulary.
// It must be safe for concurrent use.
type Mapper func(text string) models.Vocabulary

// DefaultMapper tokenizes with the plain tokenizer: lower-cased, no stopwords, no stemming.
func DefaultMapper() Mapper {
	return AnalyticsMapper(&analytics.Analytics{})
}

// AnalyticsMapper returns a Mapper backed by a.
func AnalyticsMapper(a *analytics.Analytics) Mapper {
	return func(text string) models.Vocabulary {
		return mapreduce.Map(text, a)
	}
}

// Aggregator fans batches out to a pool of workers and folds the results back in.
type Aggregator struct {
	// Workers is the number of concurrent tokenization units. Zero means runtime.NumCPU().
	Workers int
	// Map defaults to DefaultMapper.
	Map Mapper
	// Progress, if set, is called from the collecting goroutine after each partial is merged.
	Progress func(batch.Batch)
	Logger   *slog.Logger
}

type partial struct {
	batch batch.Batch
	vocab models.Vocabulary
}

// Aggregate consumes r to exhaustion and returns the merged vocabulary of all batches.
// r is always closed. Partials are merged in completion order; the result does not depend
// on it. The first failure cancels the remaining work and is returned once every goroutine
// has exited, with no partial result.
func (a *Aggregator) Aggregate(ctx context.Context, r batch.Reader) (models.Vocabulary, error) {
	defer r.Close()

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	mapper := a.Map
	if mapper == nil {
		mapper = DefaultMapper()
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	jobs := make(chan batch.Batch, workers)
	results := make(chan partial, workers)

	var wg sync.WaitGroup

	// The producer is the only goroutine touching r.
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		for {
			b, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				cancel(err)
				return
			}
			select {
			case jobs <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for b := range jobs {
				if ctx.Err() != nil {
					continue
				}
				if !utf8.ValidString(b.Text) {
					cancel(fmt.Errorf("%w: batch %d is not valid UTF-8", models.ErrDecoding, b.Index))
					continue
				}
				v := mapper(b.Text)
				logger.Debug("Batch mapped", "worker_id", id, "batch", b.Index, "lines", b.Lines, "words", v.Len())
				select {
				case results <- partial{batch: b, vocab: v}:
				case <-ctx.Done():
				}
			}
		}(w)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var reducer mapreduce.Reducer
	for p := range results {
		if ctx.Err() != nil {
			continue
		}
		reducer.Add(p.vocab)
		if a.Progress != nil {
			a.Progress(p.batch)
		}
	}

	if err := context.Cause(ctx); err != nil {
		return models.Vocabulary{}, err
	}

	logger.Debug("Aggregation finished", "batches", reducer.Partials(), "workers", workers)
	return reducer.Result(), nil
}
