package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames content with the theme border.
func Panel(t Theme, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

// Header summarizes the list: done, pending and total counts.
func Header(t Theme, done, pending int) string {
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Total"), done+pending,
	)
}
