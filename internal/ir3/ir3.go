// Package ir3 gives a best-effort listing of shader instruction memory
// captured in SP/HLSQ instruction RAM dumps. Instructions are 64-bit
// words whose top three bits select the instruction category; full
// semantic decode of the ISA is out of scope, so the listing shows the
// raw words with their category and trims the unused zero-filled tail of
// the RAM.
package ir3

import (
	"fmt"
	"io"
	"strings"
)

var catNames = [8]string{
	"cat0 (flow)",
	"cat1 (mov)",
	"cat2 (alu)",
	"cat3 (alu3)",
	"cat4 (sfu)",
	"cat5 (tex)",
	"cat6 (mem)",
	"cat7 (barrier)",
}

// Disasm lists the instructions in an instruction RAM dump and returns
// how many were printed. words holds little-endian 32-bit halves of
// 64-bit instructions; the trailing run of all-zero instructions is
// trimmed.
func Disasm(w io.Writer, words []uint32, indent int) int {
	n := len(words) / 2
	for n > 0 && words[2*n-2] == 0 && words[2*n-1] == 0 {
		n--
	}

	tabs := strings.Repeat("\t", indent)
	for i := 0; i < n; i++ {
		lo, hi := words[2*i], words[2*i+1]
		if lo == 0 && hi == 0 {
			fmt.Fprintf(w, "%s%04d: %08x %08x  nop\n", tabs, i, hi, lo)
			continue
		}
		fmt.Fprintf(w, "%s%04d: %08x %08x  %s\n", tabs, i, hi, lo, catNames[hi>>29])
	}
	return n
}
