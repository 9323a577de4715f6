package crashdump

import (
	"fmt"
	"strings"

	"github.com/niej/envytools/internal/dumpfmt"
	"github.com/niej/envytools/internal/ir3"
	"github.com/niej/envytools/internal/pm4"
)

// blockPolicy says what to do with a named payload block.
type blockPolicy int

const (
	policySkip   blockPolicy = iota // summarized; raw dump only in verbose mode
	policyDump                      // always hex dump
	policyDecode                    // specialized decode, plus hex dump
)

// Named blocks worth dumping or decoding; everything else is large and
// (so far) uninteresting outside verbose mode.
var indexedRegPolicy = map[string]blockPolicy{
	"CP_SEQ_STAT":   policyDecode,
	"CP_DRAW_STATE": policyDump,
	"CP_ROQ":        policyDump,
}

var shaderBlockPolicy = map[string]blockPolicy{
	"A6XX_SP_INST_DATA":  policyDecode,
	"A6XX_HLSQ_INST_RAM": policyDecode,
}

// decodeBOs handles the generic captured-buffer section: iova/size pairs
// with a payload, registered into the address space for later IB
// resolution.
func (d *Decoder) decodeBOs() error {
	var (
		iova     uint64
		size     uint64
		haveSize bool
	)

	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		line := s.Line()
		switch {
		case strings.HasPrefix(line, "  - iova:"):
			v, err := dumpfmt.HexField(line, "iova")
			if err != nil {
				return err
			}
			iova = v
			haveSize = false
		case strings.HasPrefix(line, "    size:"):
			v, err := dumpfmt.UintField(line, "size")
			if err != nil {
				return err
			}
			size = v
			haveSize = true
		case strings.HasPrefix(line, "    data: !!ascii85 |"):
			if !haveSize {
				return &dumpfmt.ParseError{What: "size: before data:", Line: line}
			}
			buf, err := d.readPayload(uint32(size / 4))
			if err != nil {
				return err
			}
			if d.opts.Verbose {
				dumpfmt.HexDump(d.w, buf, 1)
			}
			d.space.Add(iova, size, buf)
			continue
		}
		fmt.Fprint(d.w, line)
	}
	return s.Err()
}

// decodeRingbuffer handles the ring-buffer snapshots. Each record is
// retained for the reconstruction step and registered as a buffer region.
func (d *Decoder) decodeRingbuffer() error {
	id := 0
	var haveSize [numRingBuffers]bool

	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		line := s.Line()
		switch {
		case strings.HasPrefix(line, "  - id:"):
			v, err := dumpfmt.IntField(line, "id")
			if err != nil {
				return err
			}
			if v < 0 || v >= numRingBuffers {
				return &dumpfmt.ParseError{What: "id: <int 0..4>", Line: line}
			}
			id = v
		case strings.HasPrefix(line, "    iova:"):
			v, err := dumpfmt.HexField(line, "iova")
			if err != nil {
				return err
			}
			d.rings[id].iova = v
		case strings.HasPrefix(line, "    rptr:"):
			v, err := dumpfmt.UintField(line, "rptr")
			if err != nil {
				return err
			}
			d.rings[id].rptr = uint32(v)
		case strings.HasPrefix(line, "    wptr:"):
			v, err := dumpfmt.UintField(line, "wptr")
			if err != nil {
				return err
			}
			d.rings[id].wptr = uint32(v)
		case strings.HasPrefix(line, "    size:"):
			v, err := dumpfmt.UintField(line, "size")
			if err != nil {
				return err
			}
			d.rings[id].size = uint32(v)
			haveSize[id] = true
		case strings.HasPrefix(line, "    data: !!ascii85 |"):
			if !haveSize[id] {
				return &dumpfmt.ParseError{What: "size: before data:", Line: line}
			}
			rb := &d.rings[id]
			buf, err := d.readPayload(rb.size / 4)
			if err != nil {
				return err
			}
			rb.words = buf
			d.space.Add(rb.iova, uint64(rb.size), buf)
			continue
		}
		fmt.Fprint(d.w, line)
	}
	return s.Err()
}

// decodeRegisters replaces each offset/value line with its symbolic
// decode and records the value in the register state tracker.
func (d *Decoder) decodeRegisters() error {
	if d.db == nil {
		return fmt.Errorf("registers section before revision")
	}
	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		offset, value, err := dumpfmt.RegLine(s.Line())
		if err != nil {
			return err
		}
		d.regs.Set(offset/4, value)
		fmt.Fprintf(d.w, "\t%08x\t%s\n", value, d.db.Decode(offset/4, value))
	}
	return s.Err()
}

// decodeGMURegisters is the same shape as decodeRegisters but against the
// GMU's own database; GMU values never enter the main register state.
func (d *Decoder) decodeGMURegisters() error {
	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		offset, value, err := dumpfmt.RegLine(s.Line())
		if err != nil {
			return err
		}
		if d.gmu != nil {
			fmt.Fprintf(d.w, "\t%08x\t%s\n", value, d.gmu.Decode(offset/4, value))
		} else {
			fmt.Fprintf(d.w, "\t%08x\t<%04x>: %08x\n", value, offset/4, value)
		}
	}
	return s.Err()
}

// decodeClusters handles the banked per-cluster, per-context register
// blocks. Cluster and context headers are echoed verbatim; leaf lines get
// the same symbolic decode as the registers section, without entering the
// register state.
func (d *Decoder) decodeClusters() error {
	if d.db == nil {
		return fmt.Errorf("clusters section before revision")
	}
	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		line := s.Line()
		if strings.HasPrefix(line, "  - cluster-name:") ||
			strings.HasPrefix(line, "    - context:") {
			fmt.Fprint(d.w, line)
			continue
		}
		offset, value, err := dumpfmt.RegLine(line)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.w, "\t%08x\t%s\n", value, d.db.Decode(offset/4, value))
	}
	return s.Err()
}

// decodeIndexedRegisters handles the FIFO-style debug state dumps: named
// blocks of raw words with no per-word offsets.
func (d *Decoder) decodeIndexedRegisters() error {
	var (
		name       string
		sizedwords uint32
	)

	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		line := s.Line()
		switch {
		case strings.HasPrefix(line, "  - regs-name:"):
			v, err := dumpfmt.StringField(line, "regs-name")
			if err != nil {
				return err
			}
			name = v
		case strings.HasPrefix(line, "    dwords:"):
			v, err := dumpfmt.UintField(line, "dwords")
			if err != nil {
				return err
			}
			sizedwords = uint32(v)
		case strings.HasPrefix(line, "    data: !!ascii85 |"):
			buf, err := d.readPayload(sizedwords)
			if err != nil {
				return err
			}
			policy := indexedRegPolicy[name]
			if name == "CP_SEQ_STAT" {
				d.dumpCPSeqStat(buf)
			}
			if d.opts.Verbose || policy >= policyDump {
				dumpfmt.HexDump(d.w, buf, 1)
			}
			continue
		}
		fmt.Fprint(d.w, line)
	}
	return s.Err()
}

// dumpCPSeqStat decodes the sequencer status block: the program counter,
// the packet the sequencer was chewing on (when its header is intact),
// and the 32 scratch registers.
func (d *Decoder) dumpCPSeqStat(stat []uint32) {
	if len(stat) < 33 {
		return
	}
	fmt.Fprintf(d.w, "\t PC: %04x\n", stat[0])
	stat = stat[1:]

	if d.isA6xx() && pm4.ValidHeader(d.gpuID, stat[0]) && pm4.IsType7(stat[0]) {
		if name := pm4.OpcodeName(pm4.Type7Opcode(stat[0])); name != "" {
			fmt.Fprintf(d.w, "\tPKT: %s\n", name)
		}
	}

	for i := 0; i < 16; i++ {
		fmt.Fprintf(d.w, "\t$%02x: %08x\t\t$%02x: %08x\n",
			i, stat[i], i+16, stat[i+16])
	}
}

// decodeShaderBlocks handles typed, sized word blocks; instruction memory
// dumps get a best-effort disassembly.
func (d *Decoder) decodeShaderBlocks() error {
	var (
		blockType  string
		sizedwords uint32
	)

	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		line := s.Line()
		switch {
		case strings.HasPrefix(line, "  - type:"):
			v, err := dumpfmt.StringField(line, "type")
			if err != nil {
				return err
			}
			blockType = v
		case strings.HasPrefix(line, "      size:"):
			v, err := dumpfmt.UintField(line, "size")
			if err != nil {
				return err
			}
			sizedwords = uint32(v)
		case strings.HasPrefix(line, "    data: !!ascii85 |"):
			buf, err := d.readPayload(sizedwords)
			if err != nil {
				return err
			}
			policy := shaderBlockPolicy[blockType]
			if policy == policyDecode {
				// The block holds multiple shaders back to back; list
				// what is there rather than guessing boundaries.
				ir3.Disasm(d.w, buf, 1)
			}
			if d.opts.Verbose || policy >= policyDump {
				dumpfmt.HexDump(d.w, buf, 1)
			}
			continue
		}
		fmt.Fprint(d.w, line)
	}
	return s.Err()
}

// decodeDebugbus handles the debug bus capture. No structured
// interpretation yet; hex dump in verbose mode only.
func (d *Decoder) decodeDebugbus() error {
	var sizedwords uint32

	s := dumpfmt.NewSection(d.r)
	for s.Scan() {
		line := s.Line()
		switch {
		case strings.HasPrefix(line, "  - debugbus-block:"):
			if _, err := dumpfmt.StringField(line, "debugbus-block"); err != nil {
				return err
			}
		case strings.HasPrefix(line, "    count:"):
			v, err := dumpfmt.UintField(line, "count")
			if err != nil {
				return err
			}
			sizedwords = uint32(v)
		case strings.HasPrefix(line, "    data: !!ascii85 |"):
			buf, err := d.readPayload(sizedwords)
			if err != nil {
				return err
			}
			if d.opts.Verbose {
				dumpfmt.HexDump(d.w, buf, 1)
			}
			continue
		}
		fmt.Fprint(d.w, line)
	}
	return s.Err()
}
