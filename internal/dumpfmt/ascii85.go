package dumpfmt

import (
	"strconv"
	"strings"
)

// DecodeWords decodes one ascii85-style payload line into n 32-bit words.
// Groups of up to five printable characters accumulate value*85+(c-'!')
// into one word; a lone 'z' is shorthand for an all-zero word. Unlike
// canonical ascii85 the kernel writer never emits a short final group, and
// the payload is expected to hold at least n words; trailing characters
// beyond the n-th word are left unconsumed.
func DecodeWords(line string, n uint32) ([]uint32, error) {
	if !strings.HasPrefix(line, " ") {
		return nil, &ParseError{What: "indented ascii85 payload", Line: line}
	}
	s := strings.TrimRight(strings.TrimLeft(line, " "), "\n")

	buf := make([]uint32, n)
	idx := uint32(0)
	pos := 0
	for pos < len(s) && idx < n {
		if s[pos] == 'z' {
			buf[idx] = 0
			idx++
			pos++
			continue
		}
		var accum uint32
		for i := 0; i < 5 && pos < len(s); i++ {
			accum = accum*85 + uint32(s[pos]-'!')
			pos++
		}
		buf[idx] = accum
		idx++
	}
	if idx < n {
		return nil, &ParseError{What: "ascii85 payload of " + strconv.FormatUint(uint64(n), 10) + " words", Line: line}
	}
	return buf, nil
}

// EncodeWords is the inverse of DecodeWords. The kernel is the only real
// producer of this encoding; this encoder exists to synthesize payloads
// for tests and fixtures.
func EncodeWords(words []uint32) string {
	var b strings.Builder
	for _, w := range words {
		if w == 0 {
			b.WriteByte('z')
			continue
		}
		var grp [5]byte
		for i := 4; i >= 0; i-- {
			grp[i] = byte(w%85) + '!'
			w /= 85
		}
		b.Write(grp[:])
	}
	return b.String()
}
