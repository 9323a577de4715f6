package pm4

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/niej/envytools/internal/buffers"
	"github.com/niej/envytools/internal/regdb"
)

// IBDesc seeds decode of one indirect-buffer level: the base address the
// command processor was executing from and the dwords it had left when
// the hang was detected.
type IBDesc struct {
	Base uint64
	Rem  uint32
}

// Options configure command-stream decode.
type Options struct {
	GPUID         uint32
	Color         bool
	Verbose       bool
	DecodeMarkers bool // decode CP_NOP payloads as ASCII markers
	Summary       bool // suppress per-write lines, dump state on draws
	AllRegs       bool // dump all written registers on draws, not just recent
	IB            [3]IBDesc

	// IBHook observes each indirect-buffer reference as it is walked,
	// before recursion. Used for reference-graph capture.
	IBHook func(from, to string)
}

func (o Options) is64b() bool { return o.GPUID >= 500 }

const maxIBLevel = 2

// Decoder pretty-prints command streams, resolving indirect buffers
// against the captured address space and register writes against the
// symbolic database.
type Decoder struct {
	w     io.Writer
	opts  Options
	db    *regdb.Domain
	space *buffers.Space

	written map[uint32]uint32 // register writes since the last draw
	touched map[uint32]uint32 // all register writes this stream
	draws   int
}

// NewDecoder builds a Decoder writing annotations to w.
func NewDecoder(w io.Writer, opts Options, db *regdb.Domain, space *buffers.Space) *Decoder {
	return &Decoder{
		w:       w,
		opts:    opts,
		db:      db,
		space:   space,
		written: make(map[uint32]uint32),
		touched: make(map[uint32]uint32),
	}
}

// Dump walks one linear stream of command words at the given
// indirect-buffer level (0 for the ring buffer itself).
func (d *Decoder) Dump(words []uint32, ibLevel int) {
	d.dump(words, ibLevel, streamLabel(ibLevel, 0))
}

func (d *Decoder) dump(words []uint32, ibLevel int, label string) {
	for i := 0; i < len(words); {
		h := words[i]
		switch {
		case d.opts.is64b() && IsType7(h):
			count := int(Type7Count(h))
			end := i + 1 + count
			if end > len(words) {
				end = len(words)
			}
			d.packet(Type7Opcode(h), words[i+1:end], ibLevel, label)
			i = end
		case d.opts.is64b() && IsType4(h):
			count := int(Type4Count(h))
			end := i + 1 + count
			if end > len(words) {
				end = len(words)
			}
			d.regWrites(Type4Offset(h), words[i+1:end], ibLevel)
			i = end
		case !d.opts.is64b() && IsType3(h):
			count := int(Type3Count(h))
			end := i + 1 + count
			if end > len(words) {
				end = len(words)
			}
			d.packet(Type3Opcode(h), words[i+1:end], ibLevel, label)
			i = end
		case !d.opts.is64b() && IsType0(h):
			count := int(Type0Count(h))
			end := i + 1 + count
			if end > len(words) {
				end = len(words)
			}
			d.regWrites(Type0Offset(h), words[i+1:end], ibLevel)
			i = end
		default:
			fmt.Fprintf(d.w, "%s%08x\t; invalid header\n", indent(ibLevel), h)
			i++
		}
	}
}

func (d *Decoder) packet(opc uint32, payload []uint32, ibLevel int, label string) {
	name := OpcodeName(opc)
	if name == "" {
		name = "UNKN"
	}
	fmt.Fprintf(d.w, "%sopcode: %s (%02x) (%d dwords)\n",
		indent(ibLevel), d.hl(name), opc, len(payload))

	switch opc {
	case CP_NOP:
		if d.opts.DecodeMarkers {
			d.decodeMarker(payload, ibLevel)
		}
	case CP_SET_MARKER:
		if len(payload) > 0 {
			if mode := markerModeName(payload[0] & 0xf); mode != "" {
				fmt.Fprintf(d.w, "%s\tmode: %s\n", indent(ibLevel), mode)
			}
		}
	case CP_INDIRECT_BUFFER, CP_INDIRECT_BUFFER_PFD:
		d.indirectBuffer(payload, ibLevel, label)
	case CP_DRAW_INDX, CP_DRAW_INDX_OFFSET, CP_DRAW_INDIRECT_MULTI, CP_EXEC_CS, CP_BLIT:
		d.draw(name, ibLevel)
	}

	if d.opts.Verbose && opc != CP_INDIRECT_BUFFER && opc != CP_INDIRECT_BUFFER_PFD {
		for _, v := range payload {
			fmt.Fprintf(d.w, "%s\t%08x\n", indent(ibLevel), v)
		}
	}
}

// indirectBuffer resolves and recurses into an IB target. Payload is
// {addr lo, addr hi, size} on 64-bit generations, {addr, size} before.
func (d *Decoder) indirectBuffer(payload []uint32, ibLevel int, label string) {
	var ibAddr uint64
	var ibSize uint32
	if d.opts.is64b() {
		if len(payload) < 3 {
			return
		}
		ibAddr = uint64(payload[0]) | uint64(payload[1])<<32
		ibSize = payload[2]
	} else {
		if len(payload) < 2 {
			return
		}
		ibAddr = uint64(payload[0])
		ibSize = payload[1]
	}

	target := streamLabel(ibLevel+1, ibAddr)
	fmt.Fprintf(d.w, "%s\tibaddr: %016x\n", indent(ibLevel), ibAddr)
	fmt.Fprintf(d.w, "%s\tibsize: %08x\n", indent(ibLevel), ibSize)

	if seed := d.opts.IB[min(ibLevel+1, 2)]; seed.Base != 0 && seed.Base == ibAddr {
		fmt.Fprintf(d.w, "%s\t; crashed here, %d dwords remaining\n", indent(ibLevel), seed.Rem)
	}

	if d.opts.IBHook != nil {
		d.opts.IBHook(label, target)
	}

	if ibLevel >= maxIBLevel {
		return
	}
	words, ok := d.space.WordsAt(ibAddr, int(ibSize))
	if !ok {
		fmt.Fprintf(d.w, "%s\t; buffer not captured\n", indent(ibLevel))
		return
	}
	d.dump(words, ibLevel+1, target)
}

func (d *Decoder) regWrites(base uint32, values []uint32, ibLevel int) {
	for k, v := range values {
		off := base + uint32(k)
		d.written[off] = v
		d.touched[off] = v
		if d.opts.Summary {
			continue
		}
		fmt.Fprintf(d.w, "%s\t%08x\t%s\n", indent(ibLevel), v, d.db.Decode(off, v))
	}
}

func (d *Decoder) draw(name string, ibLevel int) {
	d.draws++
	fmt.Fprintf(d.w, "%s\t; draw #%d\n", indent(ibLevel), d.draws)
	if !d.opts.Summary && !d.opts.AllRegs {
		d.written = make(map[uint32]uint32)
		return
	}
	regs := d.written
	if d.opts.AllRegs {
		regs = d.touched
	}
	for _, off := range sortedKeys(regs) {
		fmt.Fprintf(d.w, "%s\t\t%08x\t%s\n", indent(ibLevel), regs[off], d.db.Decode(off, regs[off]))
	}
	d.written = make(map[uint32]uint32)
}

// decodeMarker prints a CP_NOP payload as text when it looks like an
// ASCII marker string.
func (d *Decoder) decodeMarker(payload []uint32, ibLevel int) {
	var b strings.Builder
	for _, w := range payload {
		for i := 0; i < 4; i++ {
			c := byte(w >> (8 * i))
			if c == 0 {
				continue
			}
			if c < 0x20 || c > 0x7e {
				return
			}
			b.WriteByte(c)
		}
	}
	if b.Len() > 0 {
		fmt.Fprintf(d.w, "%s\tmarker: %q\n", indent(ibLevel), b.String())
	}
}

// Draws returns the number of draw/dispatch/blit packets seen.
func (d *Decoder) Draws() int { return d.draws }

func (d *Decoder) hl(s string) string {
	if d.opts.Color {
		return "\x1b[36m" + s + "\x1b[0m"
	}
	return s
}

func indent(ibLevel int) string {
	return strings.Repeat("\t", ibLevel)
}

func streamLabel(ibLevel int, base uint64) string {
	if ibLevel == 0 {
		return "ringbuffer"
	}
	return fmt.Sprintf("IB%d 0x%x", ibLevel, base)
}

func sortedKeys(m map[uint32]uint32) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
