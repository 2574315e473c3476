package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.TerminalColor

	SymOK, SymFail string
	Border         lipgloss.Border
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
		Success: lipgloss.Color("42"), Error: lipgloss.Color("9"),
		SymOK: "✔", SymFail: "✖",
		Border: lipgloss.NormalBorder(),
	}
}

// SetTheme switches the palette: classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"),
			SymOK: "✔", SymFail: "✖",
			Border: lipgloss.RoundedBorder(),
		}
	case "mono":
		current = Theme{
			Name:  "mono",
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
			SymOK: "ok", SymFail: "x",
			Border: lipgloss.ASCIIBorder(),
		}
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// Styles derived from the current theme.
func TitleStyle() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(current.Title) }
func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Success) }
func ErrorStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Error).Bold(true) }

// BoxStyle frames content with the theme border.
func BoxStyle(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(c).
		Padding(0, 1)
}
