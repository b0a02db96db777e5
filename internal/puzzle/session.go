package puzzle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Session owns one game: the current board, the reference board used by
// RestartGame, the counters and the timer token.
// It is not safe for concurrent use; a single driver owns it.
type Session struct {
	current   Board
	reference Board
	free      int
	moves     int
	elapsed   int

	rule   AdjacencyRule
	rng    *rand.Rand
	timer  Timer
	logger *log.Logger
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used by NewGame.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds the random source. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRule selects the adjacency rule for moves.
func WithRule(rule AdjacencyRule) Option {
	return func(s *Session) {
		s.rule = rule
	}
}

// WithLogger sets the logger for session transitions.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates an Idle session on the solved board with the timer stopped.
func NewSession(opts ...Option) *Session {
	s := &Session{
		current:   Solved(),
		reference: Solved(),
		free:      Cells - 1,
		rule:      RowAware,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// NewGame loads a fresh shuffle as both reference and current board, resets
// the counters and restarts the timer.
func (s *Session) NewGame() {
	s.reference = Shuffle(s.rng)
	s.current = s.reference
	s.free = 0
	s.resetCounters()
	s.logger.Debug("new game", "board", s.reference.String(), "epoch", s.timer.Epoch())
}

// RestartGame reloads the reference board, resets the counters and restarts
// the timer. The reference board itself is left as is.
func (s *Session) RestartGame() {
	s.current = s.reference
	s.free = s.current.Find(Empty)
	s.resetCounters()
	s.logger.Debug("restart", "board", s.reference.String(), "epoch", s.timer.Epoch())
}

// Load deals a given board, for replaying a recorded start. It validates the
// board and otherwise behaves like NewGame.
func (s *Session) Load(b Board) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.reference = b
	s.current = b
	s.free = b.Find(Empty)
	s.resetCounters()
	s.logger.Debug("load", "board", b.String(), "epoch", s.timer.Epoch())
	return nil
}

func (s *Session) resetCounters() {
	s.moves = 0
	s.elapsed = 0
	s.closed = false
	s.timer.Restart()
}

// AttemptMove slides the tile at target into the free cell.
// It returns false without changing anything when the move is illegal or the
// board is already solved.
func (s *Session) AttemptMove(target int) bool {
	if IsSolved(s.current) {
		return false
	}

	free, ok := AttemptMove(&s.current, s.free, target, s.rule)
	if !ok {
		return false
	}
	s.free = free
	s.moves++

	if s.Status() == StatusVictory {
		s.timer.Cancel()
		s.logger.Info("solved", "moves", s.moves, "elapsed", s.elapsed)
	}
	return true
}

// Tick advances the elapsed time by one unit unless the game is won.
func (s *Session) Tick() {
	if s.Status() == StatusVictory {
		return
	}
	s.elapsed++
}

// TickFor delivers a tick scheduled under epoch. Ticks from a cancelled or
// superseded schedule are dropped and TickFor returns false, which tells the
// driver not to schedule another one.
func (s *Session) TickFor(epoch uint64) bool {
	if !s.timer.Live(epoch) {
		return false
	}
	s.Tick()
	return true
}

// Close cancels the timer. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.timer.Cancel()
	s.logger.Debug("session closed", "moves", s.moves, "elapsed", s.elapsed)
}

// Status derives the current phase.
func (s *Session) Status() Status {
	return DeriveStatus(s.current, s.moves)
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.current
}

// Reference returns a copy of the board RestartGame reloads.
func (s *Session) Reference() Board {
	return s.reference
}

// FreeIndex returns the index of the empty cell.
func (s *Session) FreeIndex() int {
	return s.free
}

// Moves returns the number of swaps since the board was loaded.
func (s *Session) Moves() int {
	return s.moves
}

// Elapsed returns the number of ticks since the timer was restarted.
func (s *Session) Elapsed() int {
	return s.elapsed
}

// Rule returns the adjacency rule in force.
func (s *Session) Rule() AdjacencyRule {
	return s.rule
}

// TimerRunning reports whether ticks are being accepted.
func (s *Session) TimerRunning() bool {
	return s.timer.Running()
}

// TimerEpoch returns the token drivers tag scheduled ticks with.
func (s *Session) TimerEpoch() uint64 {
	return s.timer.Epoch()
}
