package batch

import (
	"errors"
	"io"
)

// Opener opens one segment of a chained source.
type Opener func() (Reader, error)

type chainReader struct {
	openers []Opener
	current Reader
	index   int
	closed  bool
}

// Chain concatenates the readers produced by openers. Each reader is opened only when
// the previous one is exhausted and closed right after, so at most one underlying
// resource is held at a time. Batch indexes keep increasing across segments.
func Chain(openers ...Opener) Reader {
	return &chainReader{openers: openers}
}

func (c *chainReader) Next() (Batch, error) {
	for !c.closed {
		if c.current == nil {
			if len(c.openers) == 0 {
				return Batch{}, io.EOF
			}
			r, err := c.openers[0]()
			c.openers = c.openers[1:]
			if err != nil {
				return Batch{}, err
			}
			c.current = r
		}

		b, err := c.current.Next()
		if err == nil {
			b.Index = c.index
			c.index++
			return b, nil
		}

		cerr := c.current.Close()
		c.current = nil
		if !errors.Is(err, io.EOF) {
			return Batch{}, err
		}
		if cerr != nil {
			return Batch{}, cerr
		}
	}
	return Batch{}, io.EOF
}

func (c *chainReader) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.openers = nil
	if c.current == nil {
		return nil
	}
	err := c.current.Close()
	c.current = nil
	return err
}
