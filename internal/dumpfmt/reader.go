// Package dumpfmt provides the line-oriented primitives shared by the
// crashdump section decoders: a pushback line reader, an indented-section
// scanner, typed per-line field parsers and the ascii85 payload codec.
package dumpfmt

import (
	"bufio"
	"io"
)

// Reader is a pull-based line source with single-line pushback.
type Reader struct {
	br     *bufio.Reader
	last   string
	read   bool
	pushed bool
}

// NewReader wraps r in a line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next line of input including its trailing newline.
// io.EOF marks a clean end of stream; a final line without a trailing
// newline is still delivered before EOF is reported.
func (r *Reader) Next() (string, error) {
	if r.pushed {
		r.pushed = false
		return r.last, nil
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			r.last = line
			r.read = true
			return line, nil
		}
		return "", err
	}
	r.last = line
	r.read = true
	return line, nil
}

// Pushback arranges for the most recently read line to be re-delivered by
// the next call to Next. Calling it twice without an intervening Next, or
// before anything has been read, is a programmer error.
func (r *Reader) Pushback() {
	if r.pushed {
		panic("dumpfmt: double pushback")
	}
	if !r.read {
		panic("dumpfmt: pushback before first read")
	}
	r.pushed = true
}
