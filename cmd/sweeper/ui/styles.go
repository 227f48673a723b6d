// Package ui provides the visual styling for the sweeper terminal game:
// light/dark themes, shared lipgloss styles, and the board renderer.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by both themes.
var (
	// Light mode colors
	LightForeground = lipgloss.Color("#1a1d23")
	LightPrimary    = lipgloss.Color("#3d5a80")
	LightAccent     = lipgloss.Color("#ee6c4d")
	LightMuted      = lipgloss.Color("#8d99ae")
	LightBorder     = lipgloss.Color("#d8dee9")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#e5e9f0")
	DarkPrimary    = lipgloss.Color("#88c0d0")
	DarkAccent     = lipgloss.Color("#ebcb8b")
	DarkMuted      = lipgloss.Color("#4c566a")
	DarkBorder     = lipgloss.Color("#434c5e")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#bf616a")
	Success     = lipgloss.Color("#a3be8c")
	Warning     = lipgloss.Color("#d08770")
	Info        = lipgloss.Color("#5e81ac")

	// Classic adjacency digit colors, indexed 1..8.
	digitColors = [9]lipgloss.Color{
		"",        // 0 renders as a blank, never a digit
		"#2196f3", // 1 blue
		"#4caf50", // 2 green
		"#e53935", // 3 red
		"#3f51b5", // 4 indigo
		"#8d6e63", // 5 brown
		"#26a69a", // 6 teal
		"#9e9e9e", // 7 gray
		"#607d8b", // 8 blue-gray
	}
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeByName maps the configured theme name to a Theme. The
// SWEEPER_DARK_MODE environment variable forces dark mode regardless of
// configuration.
func ThemeByName(name string) Theme {
	if os.Getenv("SWEEPER_DARK_MODE") == "1" {
		return DarkTheme()
	}
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Prompt lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Board cells
	CellHidden lipgloss.Style
	CellFlag   lipgloss.Style
	CellMine   lipgloss.Style
	CellZero   lipgloss.Style
	RowLabel   lipgloss.Style
	ColLabel   lipgloss.Style
	Digits     [9]lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	s := Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		CellHidden: lipgloss.NewStyle().
			Foreground(theme.Muted),

		CellFlag: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		CellMine: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		CellZero: lipgloss.NewStyle().
			Foreground(theme.Border),

		RowLabel: lipgloss.NewStyle().
			Foreground(theme.Primary),

		ColLabel: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}

	for i := 1; i <= 8; i++ {
		s.Digits[i] = lipgloss.NewStyle().Foreground(digitColors[i]).Bold(i >= 3)
	}
	return s
}

// DefaultStyles returns styles for the light theme.
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}
