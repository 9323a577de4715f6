// Command crashdec decodes devcoredump traces from drm/msm. After a gpu
// crash or hang, the coredump is found in:
//
//	/sys/class/devcoredump/devcd<n>/data
//
// The dump hangs around for 5min and can be cleared by writing to the
// file; the driver logs no new dumps until the previous one is cleared or
// times out.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zboralski/lattice/render"
	"golang.org/x/term"

	"github.com/niej/envytools/internal/crashdump"
	"github.com/niej/envytools/internal/pager"
)

func main() {
	fs := flag.NewFlagSet("crashdec", flag.ExitOnError)

	var opts crashdump.Options
	var file, graphPath string

	boolFlag := func(p *bool, short, long, usage string) {
		fs.BoolVar(p, short, false, usage)
		fs.BoolVar(p, long, false, usage)
	}
	boolFlag(&opts.AllRegs, "a", "allregs",
		"show all registers (including ones not written since previous draw) at each draw")
	boolFlag(&opts.Color, "c", "color", "use colors")
	boolFlag(&opts.DecodeMarkers, "m", "markers", "try to decode CP_NOP string markers")
	boolFlag(&opts.Summary, "s", "summary",
		"don't show individual register writes, but just show register values on draws")
	boolFlag(&opts.Verbose, "v", "verbose",
		"dump more verbose output, including contents of less interesting buffers")
	fs.StringVar(&file, "f", "", "read input from specified file (rather than stdin)")
	fs.StringVar(&file, "file", "", "read input from specified file (rather than stdin)")
	fs.StringVar(&graphPath, "graph", "", "write the IB reference graph as DOT to `FILE`")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:

	crashdec [-acmsv] [-f FILE] [--graph FILE]

Options:
	-a, --allregs   - show all registers (including ones not written since
	                  previous draw) at each draw
	-c, --color     - use colors
	-f, --file=FILE - read input from specified file (rather than stdin)
	-h, --help      - this usage message
	-m, --markers   - try to decode CP_NOP string markers
	-s, --summary   - don't show individual register writes, but just show
	                  register values on draws
	-v, --verbose   - dump more verbose output, including contents of
	                  less interesting buffers
	    --graph=FILE - write the reconstructed IB reference graph as DOT

`)
	}
	fs.Parse(os.Args[1:])
	if fs.NArg() > 0 {
		fs.Usage()
		os.Exit(2)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		opts.Color = true
	}
	opts.CaptureGraph = graphPath != ""

	in := io.Reader(os.Stdin)
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	var pg *pager.Pager
	if interactive {
		p, err := pager.Open()
		if err == nil {
			pg = p
			out = pg.Writer()
		}
	}

	d := crashdump.New(in, out, opts)
	err := d.Decode()

	if err == nil && graphPath != "" {
		dot := render.DOT(d.ReferenceGraph(), "cmdstream")
		err = os.WriteFile(graphPath, []byte(dot), 0644)
	}

	if pg != nil {
		pg.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
