package play

import (
	"strings"

	"sweeper/cmd/sweeper/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder
	sb.WriteString(m.headerView())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.textinput.View())
	sb.WriteString("\n")
	sb.WriteString(m.footerView())
	return sb.String()
}

func (m Model) headerView() string {
	title := m.styles.Title.Render("Sweeper")
	if m.session != nil {
		title += "  " + ui.StatusLine(m.styles, m.session.Snapshot())
	}
	return m.styles.Header.Render(title)
}

func (m Model) footerView() string {
	return m.styles.Footer.Render("enter runs a command · help lists them · ctrl+c quits")
}

// renderHistory lays out the scrollback: player input prefixed with the
// prompt, game output as-is.
func (m Model) renderHistory() string {
	var sb strings.Builder
	for i, msg := range m.history {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.Role == rolePlayer {
			sb.WriteString(m.styles.Prompt.Render(">>> "))
		}
		sb.WriteString(msg.Content)
	}
	return sb.String()
}

// renderMarkdown renders markdown through glamour, falling back to the raw
// text when no renderer is available yet or rendering fails.
func (m Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
