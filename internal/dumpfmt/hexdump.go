package dumpfmt

import (
	"fmt"
	"io"
	"strings"
)

// HexDump writes words as hex with an ASCII gutter, four words per row,
// indented by indent tab stops. Used for the verbose raw-contents view of
// buffer and debug-state payloads.
func HexDump(w io.Writer, words []uint32, indent int) {
	tabs := strings.Repeat("\t", indent)
	for row := 0; row < len(words); row += 4 {
		end := row + 4
		if end > len(words) {
			end = len(words)
		}
		fmt.Fprintf(w, "%s%08x:", tabs, row*4)
		for _, v := range words[row:end] {
			fmt.Fprintf(w, " %08x", v)
		}
		fmt.Fprint(w, strings.Repeat("         ", 4-(end-row)))
		fmt.Fprint(w, "  |")
		for _, v := range words[row:end] {
			for i := 0; i < 4; i++ {
				c := byte(v >> (8 * i))
				if c < 0x20 || c > 0x7e {
					c = '.'
				}
				fmt.Fprintf(w, "%c", c)
			}
		}
		fmt.Fprintln(w, "|")
	}
}
