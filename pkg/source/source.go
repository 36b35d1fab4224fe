// Package source adapts the inputs a vocabulary can be built from into batch readers.
//
// Every Source opens a fresh batch.Reader per call to Open, so a source can be built
// any number of times (Stream is the exception: it consumes its io.Reader).
package source

import (
	"context"
	"io"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dtnitsch/vocab/pkg/batch"
)

// Kind names a source variant.
type Kind string

const (
	KindText   Kind = "text"
	KindFile   Kind = "file"
	KindStream Kind = "stream"
	KindGlob   Kind = "glob"
	KindHTML   Kind = "html"
	KindSQL    Kind = "sql"
)

// Source is anything a vocabulary can be built from.
type Source interface {
	Kind() Kind
	String() string
	// Open acquires the underlying resource and returns a reader producing batches of
	// batchSize lines. The caller must Close the reader.
	Open(ctx context.Context, batchSize int) (batch.Reader, error)
}

// Fingerprinter is implemented by sources whose content can be identified without
// reading it in full. Equal fingerprints imply equal content.
type Fingerprinter interface {
	Fingerprint() (string, error)
}

// Sizer is implemented by sources that know their size in bytes up front.
type Sizer interface {
	Size() (int64, error)
}

// stripBOM removes a leading byte-order mark; text without one passes through unchanged.
func stripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, xunicode.BOMOverride(transform.Nop))
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
