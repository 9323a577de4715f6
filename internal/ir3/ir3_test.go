package ir3

import (
	"strings"
	"testing"
)

func TestDisasmTrimsZeroTail(t *testing.T) {
	var out strings.Builder
	words := []uint32{
		0x00000001, 0x20000000, // cat1
		0x00000000, 0x00000000, // nop
		0x00000000, 0x00000000,
		0x00000000, 0x00000000,
	}
	n := Disasm(&out, words, 0)
	if n != 1 {
		t.Errorf("Disasm printed %d instructions, want 1", n)
	}
	if !strings.Contains(out.String(), "cat1") {
		t.Errorf("missing category annotation:\n%s", out.String())
	}
}

func TestDisasmCategories(t *testing.T) {
	var out strings.Builder
	words := []uint32{
		0x00000000, 0x00000000, // nop inside the live range
		0x00000000, 0xc0000000, // cat6
	}
	Disasm(&out, words, 1)

	got := out.String()
	if !strings.Contains(got, "nop") {
		t.Errorf("interior zero instruction not listed as nop:\n%s", got)
	}
	if !strings.Contains(got, "cat6") {
		t.Errorf("missing cat6:\n%s", got)
	}
	if !strings.HasPrefix(got, "\t") {
		t.Errorf("indent not applied:\n%q", got)
	}
}

func TestDisasmEmpty(t *testing.T) {
	var out strings.Builder
	if n := Disasm(&out, nil, 0); n != 0 {
		t.Errorf("Disasm(nil) = %d, want 0", n)
	}
	if n := Disasm(&out, []uint32{0, 0, 0, 0}, 0); n != 0 {
		t.Errorf("Disasm(all zero) = %d, want 0", n)
	}
}
