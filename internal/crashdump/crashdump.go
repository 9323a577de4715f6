// Package crashdump decodes devcoredump traces written by the drm/msm
// kernel driver after a GPU hang. It replays the dump as an annotated
// transcript: register values are decoded symbolically, captured buffers
// are registered in an address space, and once the command-processor
// registers are known the in-flight command stream is recovered from the
// ring-buffer snapshot and disassembled.
package crashdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/niej/envytools/internal/buffers"
	"github.com/niej/envytools/internal/dumpfmt"
	"github.com/niej/envytools/internal/pm4"
	"github.com/niej/envytools/internal/regdb"
)

// ROQFixup selects whether the IB remaining-size registers are corrected
// for command words slurped into the ROQ prefetch queue but not yet
// consumed. Auto applies the correction on the a6xx family only.
type ROQFixup int

const (
	ROQFixupAuto ROQFixup = iota
	ROQFixupAlways
	ROQFixupNever
)

// Options select decode behavior. The zero value decodes quietly with no
// color.
type Options struct {
	AllRegs       bool
	Color         bool
	DecodeMarkers bool
	Summary       bool
	Verbose       bool
	ROQFixup      ROQFixup
	CaptureGraph  bool
}

// ringBuffer is one ring-buffer snapshot from the dump. Up to five exist,
// indexed by the id field of their records.
type ringBuffer struct {
	iova  uint64
	rptr  uint32
	wptr  uint32
	size  uint32 // bytes
	words []uint32
}

const numRingBuffers = 5

// Decoder holds the state of one decode run. All state is confined to the
// Decoder so independent runs can coexist in a process.
type Decoder struct {
	r    *dumpfmt.Reader
	w    io.Writer
	opts Options

	gpuID uint32
	db    *regdb.Domain
	gmu   *regdb.Domain
	regs  *RegState
	rings [numRingBuffers]ringBuffer
	space buffers.Space
	ib    [3]pm4.IBDesc
	graph refGraph
}

// New builds a Decoder reading the dump from r and writing the annotated
// transcript to w.
func New(r io.Reader, w io.Writer, opts Options) *Decoder {
	return &Decoder{
		r:    dumpfmt.NewReader(r),
		w:    w,
		opts: opts,
		regs: NewRegState(),
	}
}

func (d *Decoder) isA6xx() bool { return d.gpuID >= 600 && d.gpuID < 700 }
func (d *Decoder) is64b() bool  { return d.gpuID >= 500 }

// Decode runs the whole dump through to end of stream. A format mismatch
// aborts with an error naming the offending line; end of input is a
// normal return.
func (d *Decoder) Decode() error {
	for {
		line, err := d.r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("crashdump: %w", err)
		}

		fmt.Fprint(d.w, line)

		switch {
		case strings.HasPrefix(line, "revision:"):
			err = d.decodeRevision(line)
		case strings.HasPrefix(line, "bos:"):
			err = d.decodeBOs()
		case strings.HasPrefix(line, "ringbuffer:"):
			err = d.decodeRingbuffer()
		case strings.HasPrefix(line, "registers:"):
			// This section carries the CP base/IB registers, so the
			// command stream can be reconstructed once it is done.
			if err = d.decodeRegisters(); err == nil {
				err = d.dumpCmdstream()
			}
		case strings.HasPrefix(line, "registers-gmu:"):
			err = d.decodeGMURegisters()
		case strings.HasPrefix(line, "indexed-registers:"):
			err = d.decodeIndexedRegisters()
		case strings.HasPrefix(line, "shader-blocks:"):
			err = d.decodeShaderBlocks()
		case strings.HasPrefix(line, "debugbus:"):
			err = d.decodeDebugbus()
		case strings.HasPrefix(line, "clusters:"):
			err = d.decodeClusters()
		}
		if err != nil {
			return fmt.Errorf("crashdump: %w", err)
		}
	}
}

func (d *Decoder) decodeRevision(line string) error {
	rev, err := dumpfmt.UintField(line, "revision")
	if err != nil {
		return err
	}
	d.gpuID = uint32(rev)
	fmt.Fprintf(d.w, "Got gpu_id=%d\n", d.gpuID)

	d.db = regdb.ForGeneration(d.gpuID)
	d.db.Color = d.opts.Color
	if d.isA6xx() {
		d.gmu = regdb.GMU()
		d.gmu.Color = d.opts.Color
	}
	return nil
}

// readPayload consumes the next line as an ascii85 payload of n words.
func (d *Decoder) readPayload(n uint32) ([]uint32, error) {
	line, err := d.r.Next()
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return dumpfmt.DecodeWords(line, n)
}

// roqFixupEnabled applies the configured policy for the generation.
func (d *Decoder) roqFixupEnabled() bool {
	switch d.opts.ROQFixup {
	case ROQFixupAlways:
		return true
	case ROQFixupNever:
		return false
	default:
		return d.isA6xx()
	}
}

// regVal returns the last captured value of a named register. The name
// must exist in the generation's database; the dump is assumed complete.
func (d *Decoder) regVal(name string) (uint32, error) {
	off, ok := d.db.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("register %s not in %s database", name, d.db.Name)
	}
	return d.regs.Get(off), nil
}

// regVal64 reads a register that is 64 bits wide on a5xx+ (two adjacent
// dword registers).
func (d *Decoder) regVal64(name string) (uint64, error) {
	off, ok := d.db.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("register %s not in %s database", name, d.db.Name)
	}
	val := uint64(d.regs.Get(off))
	if d.is64b() {
		val |= uint64(d.regs.Get(off+1)) << 32
	}
	return val, nil
}
