// Package game orchestrates the minefield session lifecycle: it validates
// moves against the current state, defers mine placement to the first reveal
// so the opening is always safe, and tracks win/loss bookkeeping. It is the
// only public API surface the command layer talks to.
package game

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sweeper/internal/grid"
	"sweeper/internal/minelayer"
	"sweeper/internal/reveal"
)

// Status describes the lifecycle state of a session.
type Status int

const (
	// StatusNotStarted is the zero value; no playable session exists.
	StatusNotStarted Status = iota
	// StatusInProgress accepts reveal and flag moves.
	StatusInProgress
	// StatusWon is terminal: every non-mine cell was revealed.
	StatusWon
	// StatusLost is terminal: a mine was revealed.
	StatusLost
	// StatusEnded is terminal: the player abandoned the game.
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrGameOver indicates a move was attempted on a session that is not in
// progress. Only starting a new session is valid from a terminal state.
var ErrGameOver = errors.New("game is over; start a new game")

// Session is one game instance. Exactly one is live at a time; the caller
// discards the previous session entirely when starting a new one.
type Session struct {
	id            string
	status        Status
	grid          *grid.Grid
	mineCount     int
	flagCount     int
	revealedCount int
	firstMoveDone bool
	rng           *rand.Rand
	logger        *zap.Logger
}

// Option configures a new session.
type Option func(*Session)

// WithSeed fixes the mine placement seed, making the layout reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger attaches a logger for lifecycle events. Defaults to a no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Start creates a session in progress. Mines are not placed yet: placement
// is deferred to the first reveal so the exclusion zone can center on it.
func Start(rows, cols, mines int, opts ...Option) (*Session, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	// The degraded exclusion still reserves the first-move cell, so at most
	// size-1 mines can ever be placed.
	if mines <= 0 || mines > g.Size()-1 {
		return nil, minelayer.ErrTooManyMines
	}

	s := &Session{
		id:        uuid.NewString(),
		status:    StatusInProgress,
		grid:      g,
		mineCount: mines,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed, err := minelayer.NewSeed()
		if err != nil {
			return nil, err
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	s.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("mines", mines),
	)
	return s, nil
}

// StartPreset creates a session from a named difficulty preset.
func StartPreset(name string, opts ...Option) (*Session, error) {
	p, ok := PresetByName(name)
	if !ok {
		return nil, ErrUnknownPreset
	}
	return Start(p.Rows, p.Cols, p.Mines, opts...)
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Rows returns the grid row count.
func (s *Session) Rows() int { return s.grid.Rows() }

// Cols returns the grid column count.
func (s *Session) Cols() int { return s.grid.Cols() }

// MineCount returns the number of mines on the board.
func (s *Session) MineCount() int { return s.mineCount }

// FlagCount returns the number of currently flagged cells. Flags are
// advisory: the count is unbounded and never affects win/loss.
func (s *Session) FlagCount() int { return s.flagCount }

// RevealedCount returns the number of revealed non-mine cells.
func (s *Session) RevealedCount() int { return s.revealedCount }

// Reveal uncovers the cell at (r, c). The first reveal of a session places
// the mines with a safe zone centered on it. Revealing a mine loses the
// game and uncovers every mine for display; revealing the last safe cell
// wins it.
func (s *Session) Reveal(r, c int) (reveal.Outcome, error) {
	if s.status != StatusInProgress {
		return reveal.Outcome{}, ErrGameOver
	}

	// Validate the target before any mutation so a rejected first move does
	// not lock in a mine layout.
	cell, err := s.grid.At(r, c)
	if err != nil {
		return reveal.Outcome{}, err
	}
	if cell.State == grid.Flagged {
		return reveal.Outcome{}, reveal.ErrCellFlagged
	}

	if !s.firstMoveDone {
		first := grid.Coord{Row: r, Col: c}
		if err := minelayer.Place(s.grid, s.mineCount, first, s.rng); err != nil {
			return reveal.Outcome{}, err
		}
		minelayer.ComputeAdjacency(s.grid)
		s.firstMoveDone = true
		s.logger.Debug("mines placed",
			zap.String("session_id", s.id),
			zap.Int("row", r),
			zap.Int("col", c),
		)
	}

	out, err := reveal.Reveal(s.grid, r, c)
	if err != nil {
		return reveal.Outcome{}, err
	}

	if out.HitMine {
		s.status = StatusLost
		s.revealMines()
		s.logger.Info("mine hit", zap.String("session_id", s.id), zap.Int("row", r), zap.Int("col", c))
		return out, nil
	}

	s.revealedCount += len(out.NewlyRevealed)
	if s.revealedCount == s.grid.Size()-s.mineCount {
		s.status = StatusWon
		s.revealMines()
		s.logger.Info("game won", zap.String("session_id", s.id), zap.Int("revealed", s.revealedCount))
	}
	return out, nil
}

// Flag toggles the flag on the cell at (r, c) and reports the resulting
// flagged state.
func (s *Session) Flag(r, c int) (bool, error) {
	if s.status != StatusInProgress {
		return false, ErrGameOver
	}

	flagged, err := reveal.ToggleFlag(s.grid, r, c)
	if err != nil {
		return false, err
	}

	if flagged {
		s.flagCount++
	} else {
		s.flagCount--
	}
	return flagged, nil
}

// End abandons the session without determining win or loss. The whole board
// is uncovered for a final display and no further moves are accepted.
func (s *Session) End() {
	if s.status != StatusInProgress {
		return
	}
	s.status = StatusEnded
	if s.firstMoveDone {
		s.revealAll()
	}
	s.logger.Info("session ended", zap.String("session_id", s.id))
}

// revealMines marks every mine as revealed so the final board shows them.
func (s *Session) revealMines() {
	for r := 0; r < s.grid.Rows(); r++ {
		for c := 0; c < s.grid.Cols(); c++ {
			cell, _ := s.grid.At(r, c)
			if cell.Mine {
				cell.State = grid.Revealed
			}
		}
	}
}

// revealAll uncovers every cell, mines included.
func (s *Session) revealAll() {
	for r := 0; r < s.grid.Rows(); r++ {
		for c := 0; c < s.grid.Cols(); c++ {
			cell, _ := s.grid.At(r, c)
			cell.State = grid.Revealed
		}
	}
}
