// Package play provides the interactive TUI for the sweeper game. The
// functionality is split across files:
//   - model.go: types and construction
//   - update.go: the Update loop and key handling
//   - commands.go: game command dispatch
//   - view.go: rendering
//   - help.go: the help text
package play

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"sweeper/cmd/sweeper/ui"
	"sweeper/internal/config"
	"sweeper/internal/game"
)

// Message roles in the scrollback history.
const (
	rolePlayer = "player"
	roleGame   = "game"
)

// Message is one entry in the scrollback history.
type Message struct {
	Role    string
	Content string
}

// Config holds everything needed to construct the play model.
type Config struct {
	Config config.Config
	Logger *zap.Logger
	// Seed fixes mine placement for every game in this run; 0 derives a
	// fresh crypto seed per game.
	Seed int64
	// Preset, when set, starts a game immediately instead of waiting for a
	// start command.
	Preset string
	// Rows, Cols and Mines start a custom game immediately when all three
	// are set. Preset wins if both are given.
	Rows  int
	Cols  int
	Mines int
}

// Model is the Bubble Tea model for the interactive game.
type Model struct {
	textinput textinput.Model
	viewport  viewport.Model
	styles    ui.Styles
	renderer  *glamour.TermRenderer
	logger    *zap.Logger
	cfg       config.Config
	seed      int64

	session *game.Session
	history []Message

	ready  bool
	width  int
	height int
}

// New constructs the play model. The viewport is sized on the first
// WindowSizeMsg; until then the model buffers history only.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ">>> "
	ti.Placeholder = "type help for commands"
	ti.CharLimit = 64
	ti.Focus()

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		textinput: ti,
		styles:    ui.NewStyles(ui.ThemeByName(cfg.Config.Theme)),
		logger:    logger,
		cfg:       cfg.Config,
		seed:      cfg.Seed,
	}

	m = m.say("Welcome to Sweeper!\nType help or ? for the command list.")
	switch {
	case cfg.Preset != "":
		m = m.handleStart([]string{cfg.Preset})
	case cfg.Rows > 0 && cfg.Cols > 0 && cfg.Mines > 0:
		m = m.handleStart([]string{
			strconv.Itoa(cfg.Rows), strconv.Itoa(cfg.Cols), strconv.Itoa(cfg.Mines),
		})
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session exposes the live session for tests.
func (m Model) Session() *game.Session {
	return m.session
}

// say appends a game message to the history and refreshes the viewport.
func (m Model) say(content string) Model {
	m.history = append(m.history, Message{Role: roleGame, Content: content})
	return m.refresh()
}

// echo appends the player's own input to the history.
func (m Model) echo(input string) Model {
	m.history = append(m.history, Message{Role: rolePlayer, Content: input})
	return m.refresh()
}

func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
	return m
}

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// Run starts the interactive game and blocks until the player quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
