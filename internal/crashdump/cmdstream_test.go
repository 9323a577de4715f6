package crashdump

import (
	"testing"

	"github.com/niej/envytools/internal/pm4"
)

func TestModDist(t *testing.T) {
	tests := []struct {
		from, to, n uint32
		want        uint32
	}{
		{100, 140, 256, 40},
		{140, 100, 256, 216}, // wptr behind rptr: wrapped
		{0, 0, 256, 0},
		{255, 0, 256, 1},
		{0, 255, 256, 255},
		{10, 10, 1024, 0},
	}
	for _, tt := range tests {
		if got := modDist(tt.from, tt.to, tt.n); got != tt.want {
			t.Errorf("modDist(%d, %d, %d) = %d, want %d", tt.from, tt.to, tt.n, got, tt.want)
		}
	}
}

func TestModDistExhaustive(t *testing.T) {
	const n = 32
	for from := uint32(0); from < n; from++ {
		for to := uint32(0); to < n; to++ {
			got := modDist(from, to, n)
			if got >= n {
				t.Fatalf("modDist(%d, %d, %d) = %d out of range", from, to, n, got)
			}
			if (from+got)%n != to {
				t.Fatalf("modDist(%d, %d, %d) = %d does not reach to", from, to, n, got)
			}
		}
	}
}

func TestBackwardHeaderSearch(t *testing.T) {
	const n = 64
	invalid := uint32(0xdeadbeef)
	valid := pm4.Type7Pkt(pm4.CP_NOP, 0)

	mk := func(fill uint32) []uint32 {
		words := make([]uint32, n)
		for i := range words {
			words[i] = fill
		}
		return words
	}

	t.Run("header at window start", func(t *testing.T) {
		words := mk(invalid)
		words[20] = valid
		if got := backwardHeaderSearch(words, 32, n, 630); got != 20 {
			t.Errorf("got %d, want 20", got)
		}
	})

	t.Run("header mid window", func(t *testing.T) {
		words := mk(invalid)
		words[26] = valid
		if got := backwardHeaderSearch(words, 32, n, 630); got != 26 {
			t.Errorf("got %d, want 26", got)
		}
	})

	t.Run("no header falls back to rptr", func(t *testing.T) {
		words := mk(invalid)
		if got := backwardHeaderSearch(words, 32, n, 630); got != 32 {
			t.Errorf("got %d, want 32 (the recorded rptr)", got)
		}
	})

	t.Run("window wraps around zero", func(t *testing.T) {
		words := mk(invalid)
		words[n-4] = valid
		if got := backwardHeaderSearch(words, 5, n, 630); got != n-4 {
			t.Errorf("got %d, want %d", got, n-4)
		}
	})

	t.Run("header beyond window start ignored", func(t *testing.T) {
		words := mk(invalid)
		words[10] = valid // more than 12 words before rptr
		if got := backwardHeaderSearch(words, 32, n, 630); got != 32 {
			t.Errorf("got %d, want 32", got)
		}
	})

	t.Run("pre-a5xx accepts first position", func(t *testing.T) {
		words := mk(invalid)
		if got := backwardHeaderSearch(words, 32, n, 420); got != 20 {
			t.Errorf("got %d, want 20", got)
		}
	})
}
