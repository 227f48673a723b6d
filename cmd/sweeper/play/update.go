package play

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// maxContentWidth caps markdown word wrap on very wide terminals.
const maxContentWidth = 100

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			input := m.textinput.Value()
			m.textinput.Reset()
			return m.dispatch(input)
		}
	}

	var (
		cmds []tea.Cmd
		cmd  tea.Cmd
	)
	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	// Header, input, and footer each take a line, plus one separator.
	height := msg.Height - 4
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = newViewport(msg.Width, height)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}
	m.textinput.Width = msg.Width - len(m.textinput.Prompt) - 2

	wrap := msg.Width - 2
	if wrap > maxContentWidth {
		wrap = maxContentWidth
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	); err == nil {
		m.renderer = r
	}

	return m.refresh()
}
