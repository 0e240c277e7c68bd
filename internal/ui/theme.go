package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Selected lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, SymCart string
	Dec, Inc                string
}

var asciiBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		SymOK:   "✔",
		SymFail: "✖",
		SymCart: "🛒",
		Dec:     "[-]",
		Inc:     "[+]",
	}
}

// SetTheme picks a theme by name; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		t := classic()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.BorderColor = lipgloss.Color("13")
		t.Border = lipgloss.ThickBorder()
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title:    plain,
			Muted:    plain,
			Accent:   plain,
			Success:  plain,
			Error:    plain,
			Selected: plain.Reverse(true),

			Border:      asciiBorder,
			BorderColor: lipgloss.NoColor{},

			SymOK:   "ok",
			SymFail: "error:",
			SymCart: "cart",
			Dec:     "[-]",
			Inc:     "[+]",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
