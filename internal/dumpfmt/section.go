package dumpfmt

import (
	"io"
	"strings"
)

// Section iterates the body lines of one indented section: the lines
// following a section header that begin with at least one space. The first
// line that does not is pushed back so the caller sees it as a fresh
// top-level line. Usage follows bufio.Scanner:
//
//	s := dumpfmt.NewSection(r)
//	for s.Scan() {
//		line := s.Line()
//		...
//	}
//	return s.Err()
type Section struct {
	r    *Reader
	line string
	err  error
	done bool
}

// NewSection starts iterating the section whose header was just consumed
// from r.
func NewSection(r *Reader) *Section {
	return &Section{r: r}
}

// Scan advances to the next body line, reporting false at the end of the
// section or of the stream.
func (s *Section) Scan() bool {
	if s.done {
		return false
	}
	line, err := s.r.Next()
	if err != nil {
		// End of stream inside a section is a normal end of the dump.
		if err != io.EOF {
			s.err = err
		}
		s.done = true
		return false
	}
	if !strings.HasPrefix(line, " ") {
		s.r.Pushback()
		s.done = true
		return false
	}
	s.line = line
	return true
}

// Line returns the body line read by the last successful Scan.
func (s *Section) Line() string { return s.line }

// Err returns the first non-EOF error encountered while scanning.
func (s *Section) Err() error { return s.err }

// Reader exposes the underlying line reader, for decoders that consume
// payload lines directly.
func (s *Section) Reader() *Reader { return s.r }
