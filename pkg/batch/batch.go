// Package batch splits a line-oriented stream into ordered, fixed-size text batches.
package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/vocab/models"
)

// Batch is a contiguous run of source lines joined by "\n".
type Batch struct {
	Index int    // position in generation order, starting at 0
	Text  string // line content without the final line terminator
	Lines int    // number of source lines in Text
}

// Reader yields batches in source order. Next returns io.EOF once the source is exhausted.
// Close releases the underlying resource and is safe to call more than once.
type Reader interface {
	Next() (Batch, error)
	Close() error
}

// Scanner is the line iterator consumed by NewReader. *bufio.Scanner satisfies it.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

type lineReader struct {
	sc     Scanner
	size   int
	closer io.Closer
	index  int
	done   bool
	closed bool
	lines  []string
}

// NewReader groups the lines of sc into batches of size lines. The last batch holds
// whatever remains and may be smaller; an empty stream yields no batches.
// closer, if not nil, is closed by Close.
func NewReader(sc Scanner, size int, closer io.Closer) (Reader, error) {
	if size <= 0 {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", models.ErrConfiguration, size)
	}
	return &lineReader{
		sc:     sc,
		size:   size,
		closer: closer,
		lines:  make([]string, 0, size),
	}, nil
}

func (r *lineReader) Next() (Batch, error) {
	if r.done {
		return Batch{}, io.EOF
	}

	for len(r.lines) < r.size {
		if !r.sc.Scan() {
			r.done = true
			if err := r.sc.Err(); err != nil {
				return Batch{}, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
			}
			break
		}
		r.lines = append(r.lines, r.sc.Text())
	}

	if len(r.lines) == 0 {
		return Batch{}, io.EOF
	}

	b := Batch{
		Index: r.index,
		Text:  strings.Join(r.lines, "\n"),
		Lines: len(r.lines),
	}
	r.index++
	r.lines = r.lines[:0]
	return b, nil
}

func (r *lineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.done = true
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
