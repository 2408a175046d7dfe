package arena

import "sync/atomic"

// Stats are the session counters, updated by workers at expansion
// boundaries and read by the sorter and the control surface.
type Stats struct {
	NodesAdded    atomic.Int64
	MovesAdded    atomic.Int64
	NodesExamined atomic.Int64

	WhiteWinsFound  atomic.Int64
	BlackWinsFound  atomic.Int64
	StalematesFound atomic.Int64
	NormalsFound    atomic.Int64
}

// Reset zeroes every counter. Called once per session setup.
func (s *Stats) Reset() {
	s.NodesAdded.Store(0)
	s.MovesAdded.Store(0)
	s.NodesExamined.Store(0)
	s.WhiteWinsFound.Store(0)
	s.BlackWinsFound.Store(0)
	s.StalematesFound.Store(0)
	s.NormalsFound.Store(0)
}
