package buffers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	var s Space
	s.Add(0x1000, 16, []uint32{1, 2, 3, 4})
	s.Add(0x8000, 8, []uint32{5, 6})

	tests := []struct {
		addr uint64
		want bool
		iova uint64
	}{
		{0x1000, true, 0x1000},
		{0x100f, true, 0x1000},
		{0x1010, false, 0},
		{0x0fff, false, 0},
		{0x8004, true, 0x8000},
	}
	for _, tt := range tests {
		r, ok := s.Lookup(tt.addr)
		if ok != tt.want {
			t.Errorf("Lookup(%#x) ok = %v, want %v", tt.addr, ok, tt.want)
			continue
		}
		if ok && r.IOVA != tt.iova {
			t.Errorf("Lookup(%#x).IOVA = %#x, want %#x", tt.addr, r.IOVA, tt.iova)
		}
	}
}

func TestWordsAt(t *testing.T) {
	var s Space
	s.Add(0x1000, 16, []uint32{1, 2, 3, 4})

	got, ok := s.WordsAt(0x1004, 2)
	if !ok {
		t.Fatal("WordsAt(0x1004) not found")
	}
	if diff := cmp.Diff([]uint32{2, 3}, got); diff != "" {
		t.Errorf("WordsAt mismatch (-want +got):\n%s", diff)
	}

	// Clamped to the end of the region.
	got, ok = s.WordsAt(0x100c, 100)
	if !ok || len(got) != 1 || got[0] != 4 {
		t.Errorf("WordsAt(0x100c, 100) = %v, %v; want [4], true", got, ok)
	}

	if _, ok := s.WordsAt(0x2000, 1); ok {
		t.Error("WordsAt outside any region: found")
	}
}
