package pm4

import "testing"

func TestOddParity(t *testing.T) {
	// Odd parity: the returned bit makes the total number of set bits,
	// including itself, odd.
	tests := []struct {
		val  uint32
		want uint32
	}{
		{0, 1},
		{1, 0},
		{2, 0},
		{3, 1},
		{0x7, 0},
		{0xf, 1},
		{0xffffffff, 1},
		{0x80000000, 0},
	}
	for _, tt := range tests {
		if got := OddParity(tt.val); got != tt.want {
			t.Errorf("OddParity(%#x) = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestType7RoundTrip(t *testing.T) {
	for _, opc := range []uint32{CP_NOP, CP_INDIRECT_BUFFER, CP_SET_MARKER, 0x7f} {
		for _, count := range []uint32{0, 1, 3, 39, 0x3fff} {
			h := Type7Pkt(opc, count)
			if !IsType7(h) {
				t.Errorf("IsType7(Type7Pkt(%#x, %d)) = false", opc, count)
			}
			if got := Type7Opcode(h); got != opc {
				t.Errorf("Type7Opcode = %#x, want %#x", got, opc)
			}
			if got := Type7Count(h); got != count {
				t.Errorf("Type7Count = %d, want %d", got, count)
			}
			if IsType4(h) {
				t.Errorf("Type7Pkt(%#x, %d) also passes IsType4", opc, count)
			}
		}
	}
}

func TestType7ParityRejects(t *testing.T) {
	h := Type7Pkt(CP_NOP, 4)
	if IsType7(h ^ 1<<15) {
		t.Error("flipped count parity still valid")
	}
	if IsType7(h ^ 1<<23) {
		t.Error("flipped opcode parity still valid")
	}
	if IsType7(h ^ 1) {
		t.Error("corrupted count still valid")
	}
}

func TestType4RoundTrip(t *testing.T) {
	for _, off := range []uint32{0, 0x800, 0x92a, 0x7ffff} {
		for _, count := range []uint32{1, 2, 0x7f} {
			h := Type4Pkt(off, count)
			if !IsType4(h) {
				t.Errorf("IsType4(Type4Pkt(%#x, %d)) = false", off, count)
			}
			if got := Type4Offset(h); got != off {
				t.Errorf("Type4Offset = %#x, want %#x", got, off)
			}
			if got := Type4Count(h); got != count {
				t.Errorf("Type4Count = %d, want %d", got, count)
			}
			if IsType7(h) {
				t.Errorf("Type4Pkt(%#x, %d) also passes IsType7", off, count)
			}
		}
	}
}

func TestType0Type3(t *testing.T) {
	h := Type3Pkt(CP_INDIRECT_BUFFER, 2)
	if !IsType3(h) {
		t.Error("IsType3(Type3Pkt) = false")
	}
	if Type3Opcode(h) != CP_INDIRECT_BUFFER {
		t.Errorf("Type3Opcode = %#x", Type3Opcode(h))
	}
	if Type3Count(h) != 2 {
		t.Errorf("Type3Count = %d", Type3Count(h))
	}

	h0 := Type0Pkt(0x2200, 3)
	if !IsType0(h0) {
		t.Error("IsType0(Type0Pkt) = false")
	}
	if Type0Offset(h0) != 0x2200 {
		t.Errorf("Type0Offset = %#x", Type0Offset(h0))
	}
	if Type0Count(h0) != 3 {
		t.Errorf("Type0Count = %d", Type0Count(h0))
	}
}

func TestValidHeader(t *testing.T) {
	if !ValidHeader(630, Type7Pkt(CP_NOP, 0)) {
		t.Error("valid type7 rejected on a6xx")
	}
	if !ValidHeader(630, Type4Pkt(0x800, 1)) {
		t.Error("valid type4 rejected on a6xx")
	}
	if ValidHeader(630, 0xdeadbeef) {
		t.Error("garbage accepted on a6xx")
	}
	// Before a5xx there is no reliable validity pattern; everything is
	// plausibly a header.
	if !ValidHeader(420, 0xdeadbeef) {
		t.Error("a4xx must accept any word")
	}
}

func TestOpcodeName(t *testing.T) {
	if got := OpcodeName(CP_INDIRECT_BUFFER); got != "CP_INDIRECT_BUFFER" {
		t.Errorf("OpcodeName(CP_INDIRECT_BUFFER) = %q", got)
	}
	if got := OpcodeName(0x7e); got != "" {
		t.Errorf("OpcodeName(unknown) = %q, want empty", got)
	}
}
