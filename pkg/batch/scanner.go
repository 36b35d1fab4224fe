package batch

import (
	"bufio"
	"io"
	"strings"
)

// LineScanner reads lines of any length from a byte stream.
// Unlike bufio.Scanner it has no maximum token size, so a single long line never fails a build.
type LineScanner struct {
	r    *bufio.Reader
	line string
	err  error
	eof  bool
}

// NewLineScanner returns a LineScanner reading from r.
func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{r: bufio.NewReaderSize(r, 64*1024)}
}

// Scan advances to the next line. A trailing "\r" is dropped.
func (s *LineScanner) Scan() bool {
	if s.eof || s.err != nil {
		return false
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return false
		}
		s.eof = true
		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	s.line = strings.TrimSuffix(line, "\r")
	return true
}

// Text returns the most recent line without its terminator.
func (s *LineScanner) Text() string {
	return s.line
}

// Err returns the first non-EOF error encountered.
func (s *LineScanner) Err() error {
	return s.err
}

// SliceScanner iterates over an in-memory list of lines.
type SliceScanner struct {
	lines []string
	pos   int
}

// NewSliceScanner returns a Scanner over lines.
func NewSliceScanner(lines []string) *SliceScanner {
	return &SliceScanner{lines: lines, pos: -1}
}

func (s *SliceScanner) Scan() bool {
	if s.pos+1 >= len(s.lines) {
		s.pos = len(s.lines)
		return false
	}
	s.pos++
	return true
}

func (s *SliceScanner) Text() string {
	if s.pos < 0 || s.pos >= len(s.lines) {
		return ""
	}
	return s.lines[s.pos]
}

func (s *SliceScanner) Err() error { return nil }
