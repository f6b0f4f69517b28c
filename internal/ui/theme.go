package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols.
type Theme struct {
	Name                               string
	Title, Muted, Accent, Success, Err lipgloss.Style
	Pending                            lipgloss.Style
	BoxDone, BoxPending                string
	Border                             lipgloss.Border
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme; unknown names fall back to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:       "neon",
			Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:      lipgloss.NewStyle().Faint(true),
			Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Err:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			BoxDone:    "[◼]",
			BoxPending: "[◻]",
			Border:     lipgloss.RoundedBorder(),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Err: plain, Pending: plain,
			BoxDone:    "[X]",
			BoxPending: "[ ]",
			Border:     lipgloss.NormalBorder(),
		}
	default: // classic
		return Theme{
			Name:       "classic",
			Title:      lipgloss.NewStyle().Bold(true),
			Muted:      lipgloss.NewStyle().Faint(true),
			Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Err:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			BoxDone:    "[✓]",
			BoxPending: "[✗]",
			Border:     lipgloss.NormalBorder(),
		}
	}
}

// KnownTheme reports whether name is one of ThemeNames.
func KnownTheme(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range ThemeNames {
		if n == name {
			return true
		}
	}
	return false
}
