package crashdump

// RegState tracks the most recently observed value of each register,
// keyed by dword offset. Never-written registers read as zero. The
// tracker is reset before command-stream reconstruction so the decode of
// individual draws does not see stale snapshot values.
type RegState struct {
	vals map[uint32]uint32
}

// NewRegState returns an empty tracker.
func NewRegState() *RegState {
	return &RegState{vals: make(map[uint32]uint32)}
}

// Set records the latest value for a register.
func (s *RegState) Set(offset, value uint32) {
	s.vals[offset] = value
}

// Get returns the last recorded value, or zero if never written.
func (s *RegState) Get(offset uint32) uint32 {
	return s.vals[offset]
}

// Reset clears every register back to the default.
func (s *RegState) Reset() {
	clear(s.vals)
}
