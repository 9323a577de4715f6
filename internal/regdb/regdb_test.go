package regdb

import (
	"strings"
	"testing"
)

func TestForGeneration(t *testing.T) {
	tests := []struct {
		gpuID uint32
		want  string
	}{
		{630, "A6XX"},
		{650, "A6XX"},
		{540, "A5XX"},
		{420, "A4XX"},
		{330, "A4XX"},
	}
	for _, tt := range tests {
		if got := ForGeneration(tt.gpuID).Name; got != tt.want {
			t.Errorf("ForGeneration(%d).Name = %q, want %q", tt.gpuID, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	db := ForGeneration(630)
	tests := []struct {
		name string
		want uint32
	}{
		{"CP_RB_BASE", 0x0800},
		{"CP_IB1_BASE", 0x0928},
		{"CP_IB1_REM_SIZE", 0x092a},
		{"CP_CSQ_IB2_STAT", 0x094a},
	}
	for _, tt := range tests {
		got, ok := db.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %#x, want %#x", tt.name, got, tt.want)
		}
	}

	if _, ok := db.Lookup("NO_SUCH_REG"); ok {
		t.Error("Lookup of unknown name succeeded")
	}
}

func TestDecodeKnown(t *testing.T) {
	db := ForGeneration(630)
	got := db.Decode(0x0800, 0x1000)
	if got != "CP_RB_BASE: 00001000" {
		t.Errorf("Decode(CP_RB_BASE) = %q", got)
	}
}

func TestDecodeUnknownOffset(t *testing.T) {
	db := ForGeneration(630)
	got := db.Decode(0x7fff, 0xabcd)
	if got != "<7fff>: 0000abcd" {
		t.Errorf("Decode(unknown) = %q", got)
	}
}

func TestDecodeBitfields(t *testing.T) {
	db := ForGeneration(630)

	// CP_BUSY-style single bits render by name, multi-bit fields with value.
	got := db.Decode(0x0949, 5<<16)
	if !strings.Contains(got, "CP_CSQ_IB1_STAT") || !strings.Contains(got, "REM=0x5") {
		t.Errorf("Decode(CP_CSQ_IB1_STAT) = %q", got)
	}

	got = db.Decode(0x0210, 1<<7|1<<0)
	if !strings.Contains(got, "RB_BUSY") || !strings.Contains(got, "CP_AHB_BUSY_CP_MASTER") {
		t.Errorf("Decode(RBBM_STATUS) = %q", got)
	}

	// Zero value: no field expansion.
	got = db.Decode(0x0210, 0)
	if strings.Contains(got, "{") {
		t.Errorf("Decode(RBBM_STATUS, 0) = %q, want no field block", got)
	}
}

func TestDecodeColor(t *testing.T) {
	db := ForGeneration(630)
	db.Color = true
	got := db.Decode(0x0800, 0)
	if !strings.Contains(got, "\x1b[1mCP_RB_BASE\x1b[0m") {
		t.Errorf("colored Decode = %q", got)
	}
}

func TestGMUDomain(t *testing.T) {
	gmu := GMU()
	got := gmu.Decode(0x23b2, 1)
	if !strings.Contains(got, "GMU_AO_HOST_INTERRUPT_STATUS") || !strings.Contains(got, "WDOG_BITE") {
		t.Errorf("GMU Decode = %q", got)
	}

	// GMU names must not leak into the main domain.
	if _, ok := ForGeneration(630).Lookup("GMU_AO_HOST_INTERRUPT_STATUS"); ok {
		t.Error("GMU register resolvable in main A6XX domain")
	}
}
