package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Urgent, Selected lipgloss.Style

	Border              lipgloss.Border
	BorderColor         lipgloss.Color
	SymOK, SymFail      string
	ToggleOn, ToggleOff string
}

var current = classic()

// SetTheme switches the active theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Urgent:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔",
			SymFail:     "✖",
			ToggleOn:    "◼",
			ToggleOff:   "◻",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title:     plain,
			Muted:     plain,
			Accent:    plain,
			Success:   plain,
			Error:     plain,
			Urgent:    plain,
			Selected:  plain,
			Border:    lipgloss.NormalBorder(),
			SymOK:     "ok",
			SymFail:   "x",
			ToggleOn:  "[x]",
			ToggleOff: "[ ]",
		}
	default: // classic
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Urgent:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔",
		SymFail:     "✖",
		ToggleOn:    "☑",
		ToggleOff:   "☐",
	}
}

// Expose what renderers need
func Current() Theme { return current }
