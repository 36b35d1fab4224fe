package source

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/vocab/pkg/batch"
)

// TextSource is in-memory text. It goes through the same line batching as files;
// a batch size larger than the line count tokenizes the whole text as one unit.
type TextSource struct {
	text string
}

// Text returns a source over s.
func Text(s string) TextSource {
	return TextSource{text: s}
}

func (s TextSource) Kind() Kind { return KindText }

func (s TextSource) String() string {
	return fmt.Sprintf("text(%d bytes)", len(s.text))
}

func (s TextSource) Open(_ context.Context, batchSize int) (batch.Reader, error) {
	return batch.NewReader(batch.NewLineScanner(strings.NewReader(s.text)), batchSize, nil)
}

func (s TextSource) Size() (int64, error) {
	return int64(len(s.text)), nil
}

func (s TextSource) Fingerprint() (string, error) {
	return fmt.Sprintf("text:%x", sha256.Sum256([]byte(s.text))), nil
}

// StreamSource reads from an io.Reader supplied by the caller, such as stdin.
// The reader is not closed by the engine and can be consumed only once.
type StreamSource struct {
	name string
	r    io.Reader
}

// Stream returns a source reading r. name is used in logs.
func Stream(name string, r io.Reader) StreamSource {
	return StreamSource{name: name, r: r}
}

func (s StreamSource) Kind() Kind { return KindStream }

func (s StreamSource) String() string { return s.name }

func (s StreamSource) Open(_ context.Context, batchSize int) (batch.Reader, error) {
	return batch.NewReader(batch.NewLineScanner(stripBOM(s.r)), batchSize, nil)
}
