// Package buffers tracks captured GPU buffer contents by I/O virtual
// address, so that addresses referenced by the command stream can be
// resolved back to the bytes the kernel captured.
package buffers

// Region is one captured buffer: an iova range backed by decoded words.
type Region struct {
	IOVA  uint64
	Size  uint64 // bytes
	Words []uint32
}

// Contains reports whether addr falls inside the region.
func (r *Region) Contains(addr uint64) bool {
	return addr >= r.IOVA && addr < r.IOVA+r.Size
}

// Space maps GPU virtual addresses to captured contents. Regions
// accumulate for the life of a decode run and are never removed.
type Space struct {
	regions []Region
}

// Add registers a captured buffer.
func (s *Space) Add(iova, size uint64, words []uint32) {
	s.regions = append(s.regions, Region{IOVA: iova, Size: size, Words: words})
}

// Lookup returns the region containing addr. Resolution is best effort:
// a miss just means that buffer was not captured.
func (s *Space) Lookup(addr uint64) (*Region, bool) {
	for i := range s.regions {
		if s.regions[i].Contains(addr) {
			return &s.regions[i], true
		}
	}
	return nil, false
}

// WordsAt returns up to max words starting at addr, clamped to the end of
// the containing region.
func (s *Space) WordsAt(addr uint64, max int) ([]uint32, bool) {
	r, ok := s.Lookup(addr)
	if !ok {
		return nil, false
	}
	off := int((addr - r.IOVA) / 4)
	if off >= len(r.Words) {
		return nil, false
	}
	words := r.Words[off:]
	if max >= 0 && max < len(words) {
		words = words[:max]
	}
	return words, true
}

// Len returns the number of registered regions.
func (s *Space) Len() int { return len(s.regions) }
