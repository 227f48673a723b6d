package play

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sweeper/cmd/sweeper/ui"
	"sweeper/internal/game"
	"sweeper/internal/grid"
	"sweeper/internal/position"
	"sweeper/internal/reveal"
)

// Player-facing messages reused across handlers.
const (
	msgNotStarted = "Game is not started."
	msgGameOver   = "Game is over. Type start to play again."
	msgInvalid    = "Invalid command or arguments, please type help for instructions."
	msgVisible    = "Position is already visible."
	msgOutOfRange = "Position is out of range."
)

// minExclusion is the largest possible first-move exclusion zone. Custom
// games cap mines at size minus this so the opening area stays clear.
const minExclusion = 9

// dispatch handles one line of player input. Commands and positions are
// case-insensitive.
func (m Model) dispatch(input string) (Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m, nil
	}
	m = m.echo(input)
	m.logger.Debug("player command", zap.String("input", input))

	fields := strings.Fields(strings.ToLower(input))
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "start", "s":
		return m.handleStart(args), nil
	case "reveal", "hit", "disclose", "r", "h":
		return m.handleReveal(args), nil
	case "flag", "f":
		return m.handleFlag(args), nil
	case "display", "d":
		return m.handleDisplay(), nil
	case "end", "e":
		return m.handleEnd(), nil
	case "help", "?":
		return m.handleHelp(), nil
	case "quit", "q", "exit":
		return m, tea.Quit
	default:
		return m.say(msgInvalid), nil
	}
}

// handleStart begins a new game from a preset name or explicit dimensions.
// The previous session, finished or not, is discarded.
func (m Model) handleStart(args []string) Model {
	var (
		session *game.Session
		err     error
	)

	opts := []game.Option{game.WithLogger(m.logger)}
	if m.seed != 0 {
		opts = append(opts, game.WithSeed(m.seed))
	}

	switch len(args) {
	case 0:
		session, err = game.StartPreset(m.cfg.DefaultPreset, opts...)
	case 1:
		session, err = game.StartPreset(args[0], opts...)
		if errors.Is(err, game.ErrUnknownPreset) {
			return m.say(fmt.Sprintf("Unknown difficulty %q: choose easy, normal or hard.", args[0]))
		}
	case 3:
		rows, rerr := strconv.Atoi(args[0])
		cols, cerr := strconv.Atoi(args[1])
		mines, merr := strconv.Atoi(args[2])
		if rerr != nil || cerr != nil || merr != nil {
			return m.say(msgInvalid)
		}

		min, max := m.cfg.Board.MinSize, m.cfg.Board.MaxSize
		if rows < min || rows > max || cols < min || cols > max {
			return m.say(fmt.Sprintf("Rows and columns have to be between %d and %d.", min, max))
		}
		if limit := rows*cols - minExclusion; mines < 1 || mines > limit {
			return m.say(fmt.Sprintf("Mines have to be between 1 and %d.", limit))
		}

		session, err = game.Start(rows, cols, mines, opts...)
	default:
		return m.say(msgInvalid)
	}
	if err != nil {
		return m.say(msgInvalid)
	}

	m.session = session
	return m.say(fmt.Sprintf("Game started. There are %d mines. Good luck!\n\n%s",
		session.MineCount(), m.board()))
}

func (m Model) handleReveal(args []string) Model {
	if m.session == nil {
		return m.say(msgNotStarted)
	}
	if m.session.Status() != game.StatusInProgress {
		return m.say(msgGameOver)
	}

	pos, err := position.Parse(args)
	if err != nil {
		return m.say("Invalid position, use a column letter and a row number like B3.")
	}

	out, err := m.session.Reveal(pos.Row, pos.Col)
	switch {
	case errors.Is(err, grid.ErrOutOfBounds):
		return m.say(msgOutOfRange)
	case errors.Is(err, reveal.ErrCellFlagged):
		return m.say("That cell is flagged. Unflag it before revealing.")
	case err != nil:
		return m.say(msgInvalid)
	}

	switch {
	case out.HitMine:
		return m.say(fmt.Sprintf("Unfortunately, you hit a mine.\n\n%s", m.board()))
	case m.session.Status() == game.StatusWon:
		return m.say(fmt.Sprintf("Congratulations! You won, good job!\n\n%s", m.board()))
	case len(out.NewlyRevealed) == 0:
		return m.say(msgVisible)
	default:
		return m.say(m.board())
	}
}

func (m Model) handleFlag(args []string) Model {
	if m.session == nil {
		return m.say(msgNotStarted)
	}
	if m.session.Status() != game.StatusInProgress {
		return m.say(msgGameOver)
	}

	pos, err := position.Parse(args)
	if err != nil {
		return m.say("Invalid position, use a column letter and a row number like B3.")
	}

	flagged, err := m.session.Flag(pos.Row, pos.Col)
	switch {
	case errors.Is(err, grid.ErrOutOfBounds):
		return m.say(msgOutOfRange)
	case errors.Is(err, reveal.ErrCellAlreadyRevealed):
		return m.say(msgVisible)
	case err != nil:
		return m.say(msgInvalid)
	}

	verb := "Flag placed."
	if !flagged {
		verb = "Flag removed."
	}
	return m.say(fmt.Sprintf("%s\n\n%s", verb, m.board()))
}

func (m Model) handleDisplay() Model {
	if m.session == nil {
		return m.say(msgNotStarted)
	}
	return m.say(m.board())
}

func (m Model) handleEnd() Model {
	if m.session == nil {
		return m.say(msgNotStarted)
	}
	if m.session.Status() != game.StatusInProgress {
		return m.say(msgGameOver)
	}

	m.session.End()
	return m.say(fmt.Sprintf("Game ended.\n\n%s", m.board()))
}

func (m Model) handleHelp() Model {
	return m.say(m.renderMarkdown(helpText))
}

// board renders the live session as a status line over the grid.
func (m Model) board() string {
	snap := m.session.Snapshot()
	return ui.StatusLine(m.styles, snap) + "\n" + ui.RenderBoard(m.styles, snap)
}
