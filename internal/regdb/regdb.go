// Package regdb is the symbolic register database for adreno GPUs: static
// per-generation domains mapping dword offsets to register names and known
// bitfield layouts. The tables hold the registers the crashdump decoder
// annotates plus the common status registers seen in coredumps.
package regdb

import (
	"fmt"
	"strings"
)

// Bitfield is one named bit range of a register, bits Lo..Hi inclusive.
type Bitfield struct {
	Name   string
	Lo, Hi uint
}

func (b Bitfield) extract(value uint32) uint32 {
	width := b.Hi - b.Lo + 1
	mask := uint32(1)<<width - 1
	return (value >> b.Lo) & mask
}

// Register is a named register with optional bitfield decode.
type Register struct {
	Name   string
	Fields []Bitfield
}

// Domain is one register address space: a GPU generation's main register
// file, or the GMU management microcontroller's.
type Domain struct {
	Name  string
	Color bool

	regs   map[uint32]Register
	byName map[string]uint32
}

func newDomain(name string, regs map[uint32]Register) *Domain {
	d := &Domain{Name: name, regs: regs, byName: make(map[string]uint32, len(regs))}
	for off, r := range regs {
		d.byName[r.Name] = off
	}
	return d
}

// ForGeneration returns the main register domain for a GPU generation id
// (e.g. 630 for a630).
func ForGeneration(gpuID uint32) *Domain {
	switch {
	case gpuID >= 600:
		return newDomain("A6XX", a6xxRegs)
	case gpuID >= 500:
		return newDomain("A5XX", a5xxRegs)
	default:
		return newDomain("A4XX", a4xxRegs)
	}
}

// GMU returns the a6xx GMU register domain.
func GMU() *Domain {
	return newDomain("A6XX_GMU", gmuRegs)
}

// Lookup maps a register name to its dword offset.
func (d *Domain) Lookup(name string) (uint32, bool) {
	off, ok := d.byName[name]
	return off, ok
}

// Info returns the register at a dword offset.
func (d *Domain) Info(offset uint32) (Register, bool) {
	r, ok := d.regs[offset]
	return r, ok
}

// Decode renders a register value symbolically: the register name and,
// where the layout is known, its bitfield expansion. Offsets absent from
// the database fall back to "<offset>: value" so unknown registers still
// appear in the transcript.
func (d *Domain) Decode(offset, value uint32) string {
	r, ok := d.regs[offset]
	if !ok {
		return fmt.Sprintf("<%04x>: %08x", offset, value)
	}
	name := r.Name
	if d.Color {
		name = "\x1b[1m" + name + "\x1b[0m"
	}
	if len(r.Fields) == 0 {
		return fmt.Sprintf("%s: %08x", name, value)
	}
	var fields []string
	for _, f := range r.Fields {
		v := f.extract(value)
		if v == 0 {
			continue
		}
		if f.Lo == f.Hi {
			fields = append(fields, f.Name)
		} else {
			fields = append(fields, fmt.Sprintf("%s=0x%x", f.Name, v))
		}
	}
	if len(fields) == 0 {
		return fmt.Sprintf("%s: %08x", name, value)
	}
	return fmt.Sprintf("%s: %08x { %s }", name, value, strings.Join(fields, " | "))
}
