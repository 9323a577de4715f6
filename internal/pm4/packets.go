// Package pm4 decodes adreno command-processor packet streams: packet
// header framing for every generation family, opcode naming, and a
// pretty-printer that recurses into indirect buffers.
package pm4

// OddParity computes the odd-parity bit folded into type4 and type7
// packet headers.
func OddParity(val uint32) uint32 {
	return (0x9669 >> (0xf & (val ^ val>>4 ^ val>>8 ^ val>>12 ^
		val>>16 ^ val>>20 ^ val>>24 ^ val>>28))) & 1
}

const (
	type4Header = 0x40000000
	type7Header = 0x70000000
)

// IsType7 reports whether h is a valid type7 packet header, including
// both parity bits.
func IsType7(h uint32) bool {
	return h&0xf0000000 == type7Header &&
		OddParity(Type7Count(h)) == (h>>15)&1 &&
		OddParity(Type7Opcode(h)) == (h>>23)&1
}

// Type7Opcode extracts the opcode of a type7 header.
func Type7Opcode(h uint32) uint32 { return (h >> 16) & 0x7f }

// Type7Count extracts the payload dword count of a type7 header.
func Type7Count(h uint32) uint32 { return h & 0x3fff }

// Type7Pkt builds a type7 packet header.
func Type7Pkt(opcode, count uint32) uint32 {
	return type7Header | OddParity(count)<<15 | (count & 0x3fff) |
		OddParity(opcode)<<23 | (opcode&0x7f)<<16
}

// IsType4 reports whether h is a valid type4 (register write) header.
func IsType4(h uint32) bool {
	return h&0xf0000000 == type4Header &&
		OddParity(Type4Count(h)) == (h>>7)&1 &&
		OddParity(Type4Offset(h)) == (h>>27)&1
}

// Type4Offset extracts the base register dword offset of a type4 header.
func Type4Offset(h uint32) uint32 { return (h >> 8) & 0x7ffff }

// Type4Count extracts the register value count of a type4 header.
func Type4Count(h uint32) uint32 { return h & 0x7f }

// Type4Pkt builds a type4 packet header.
func Type4Pkt(offset, count uint32) uint32 {
	return type4Header | OddParity(count)<<7 | (count & 0x7f) |
		OddParity(offset)<<27 | (offset&0x7ffff)<<8
}

// Pre-a5xx framing: type0 register writes and type3 commands, no parity
// protection.

// IsType0 reports whether h has the type0 header tag.
func IsType0(h uint32) bool { return h>>30 == 0 }

// Type0Offset extracts the base register offset of a type0 header.
func Type0Offset(h uint32) uint32 { return h & 0x7fff }

// Type0Count extracts the register value count of a type0 header.
func Type0Count(h uint32) uint32 { return ((h >> 16) & 0x3fff) + 1 }

// Type0Pkt builds a type0 packet header.
func Type0Pkt(offset, count uint32) uint32 {
	return ((count-1)&0x3fff)<<16 | offset&0x7fff
}

// IsType3 reports whether h has the type3 header tag.
func IsType3(h uint32) bool { return h>>30 == 3 }

// Type3Opcode extracts the opcode of a type3 header.
func Type3Opcode(h uint32) uint32 { return (h >> 8) & 0xff }

// Type3Count extracts the payload dword count of a type3 header.
func Type3Count(h uint32) uint32 { return ((h >> 16) & 0x3fff) + 1 }

// Type3Pkt builds a type3 packet header.
func Type3Pkt(opcode, count uint32) uint32 {
	return 3<<30 | ((count-1)&0x3fff)<<16 | (opcode&0xff)<<8
}

// ValidHeader reports whether h plausibly starts a packet for the given
// GPU generation. On a5xx+ the parity bits make this an exact check; on
// older generations every word passes, accepting imprecision.
func ValidHeader(gpuID, h uint32) bool {
	if gpuID >= 500 {
		return IsType4(h) || IsType7(h)
	}
	return true
}
