package puzzle

// Snapshot is a read-only copy of the state a presentation layer needs.
type Snapshot struct {
	Board        Board
	Free         int
	Status       Status
	Moves        int
	Elapsed      int
	Rule         AdjacencyRule
	TimerRunning bool
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:        s.current,
		Free:         s.free,
		Status:       s.Status(),
		Moves:        s.moves,
		Elapsed:      s.elapsed,
		Rule:         s.rule,
		TimerRunning: s.timer.Running(),
	}
}
