package components

import (
	"fmt"

	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with the year selector and
// current selection summary.
func RenderStatusBar(width, year int, selection, dataAge string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	yearStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	left := fmt.Sprintf(" [?]help  [q]uit  [[/]]year %s", yearStyle.Render(fmt.Sprintf("%d", year)))
	if selection != "" {
		left += fmt.Sprintf("  ◆ %s [c]lear", selection)
	}

	right := ""
	if dataAge != "" {
		right = fmt.Sprintf("Data: %s ", dataAge)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
