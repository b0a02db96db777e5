package puzzle

// Status is the game phase derived from the board and the move counter.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusInGame  Status = "ingame"
	StatusVictory Status = "victory"
)

// DeriveStatus computes the phase of a board after moves swaps.
// A solved board only counts as a victory once a move has been made, so a
// freshly loaded solved board is Idle.
func DeriveStatus(b Board, moves int) Status {
	switch {
	case moves == 0:
		return StatusIdle
	case IsSolved(b):
		return StatusVictory
	default:
		return StatusInGame
	}
}
