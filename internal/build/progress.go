package build

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/dtnitsch/vocab/pkg/batch"
	"github.com/dtnitsch/vocab/pkg/source"
)

// progress draws one bar over all sources, advancing by the bytes of each merged batch.
// Builds run concurrently, so every update takes the lock.
type progress struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// newProgress sizes the bar from the sources that know their size. If any does not,
// the bar becomes a spinner.
func newProgress(w io.Writer, sources []source.Source) *progress {
	var total int64
	for _, src := range sources {
		sizer, ok := src.(source.Sizer)
		if !ok {
			total = -1
			break
		}
		n, err := sizer.Size()
		if err != nil {
			total = -1
			break
		}
		total += n
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]Building[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
	return &progress{bar: bar}
}

// add records a merged batch. The newline dropped between lines is counted back.
func (p *progress) add(b batch.Batch) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.bar.Add(len(b.Text) + b.Lines)
}

func (p *progress) finish() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.bar.Finish()
}
