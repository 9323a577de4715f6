package crashdump

import (
	"fmt"

	"github.com/niej/envytools/internal/pm4"
)

// rptrLookback is how many words before the recorded read pointer the
// reconstructor searches for a verified packet boundary. The read pointer
// has usually advanced past the IB hand-off into userspace cmdstream, so
// backing up recovers the packets still in flight.
const rptrLookback = 12

// dumpCmdstream recovers the in-flight command stream once the registers
// section has been decoded. A missing ring buffer for the recorded base
// address is a valid outcome (nothing was in flight), not an error.
func (d *Decoder) dumpCmdstream() error {
	rbBase, err := d.regVal64("CP_RB_BASE")
	if err != nil {
		return err
	}
	fmt.Fprintf(d.w, "got rb_base=%x\n", rbBase)

	for n := 1; n <= 2; n++ {
		base, err := d.regVal64(fmt.Sprintf("CP_IB%d_BASE", n))
		if err != nil {
			return err
		}
		rem, err := d.regVal(fmt.Sprintf("CP_IB%d_REM_SIZE", n))
		if err != nil {
			return err
		}
		d.ib[n] = pm4.IBDesc{Base: base, Rem: rem}
	}

	// Account for cmdstream slurped into the ROQ but not yet consumed by
	// the SQE: the high half of the CSQ status registers holds the
	// not-yet-retired word count.
	if d.roqFixupEnabled() {
		for n := 1; n <= 2; n++ {
			stat, err := d.regVal(fmt.Sprintf("CP_CSQ_IB%d_STAT", n))
			if err != nil {
				return err
			}
			d.ib[n].Rem += stat >> 16
		}
	}

	fmt.Fprintf(d.w, "IB1: %x, %d\n", d.ib[1].Base, d.ib[1].Rem)
	fmt.Fprintf(d.w, "IB2: %x, %d\n", d.ib[2].Base, d.ib[2].Rem)

	// The regvals we need are latched; reset state so later per-draw
	// decode does not see the snapshot values.
	d.regs.Reset()

	for id := range d.rings {
		rb := &d.rings[id]
		if rb.iova != rbBase || rb.words == nil || rb.size == 0 {
			continue
		}

		fmt.Fprintln(d.w, "found ring!")

		ringszdw := rb.size >> 2
		rptr := backwardHeaderSearch(rb.words, rb.rptr, ringszdw, d.gpuID)
		cmdszdw := modDist(rptr, rb.wptr, ringszdw)
		fmt.Fprintf(d.w, "got cmdszdw=%d\n", cmdszdw)

		// Copy out linearly; the disassembler does not deal with
		// wraparound.
		buf := make([]uint32, cmdszdw)
		for i := range buf {
			buf[i] = rb.words[modAdd(int(rptr), i, int(ringszdw))]
		}

		dec := pm4.NewDecoder(d.w, pm4.Options{
			GPUID:         d.gpuID,
			Color:         d.opts.Color,
			Verbose:       d.opts.Verbose,
			DecodeMarkers: d.opts.DecodeMarkers,
			Summary:       d.opts.Summary,
			AllRegs:       d.opts.AllRegs,
			IB:            d.ib,
			IBHook:        d.graphHook(),
		}, d.db, &d.space)
		dec.Dump(buf, 0)
	}
	return nil
}

// backwardHeaderSearch backs up rptrLookback words from the recorded read
// pointer and advances to the first word that parses as a plausible
// packet header. If nothing in the window qualifies it lands back on the
// recorded read pointer.
func backwardHeaderSearch(words []uint32, rptr, ringszdw, gpuID uint32) uint32 {
	p := modAdd(int(rptr), -rptrLookback, int(ringszdw))
	for i := 0; i < rptrLookback; i++ {
		if pm4.ValidHeader(gpuID, words[p]) {
			break
		}
		p = modAdd(p, 1, int(ringszdw))
	}
	return uint32(p)
}

// modAdd wraps b+v into [0, n). v may be negative.
func modAdd(b, v, n int) int {
	return ((b+v)%n + n) % n
}

// modDist is the modular distance from from to to over a ring of n words,
// always in [0, n).
func modDist(from, to, n uint32) uint32 {
	return uint32(modAdd(int(to), -int(from), int(n)))
}
