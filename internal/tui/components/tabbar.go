package components

import (
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Map", Key: 'm', KeyPos: 0},
	{Name: "Timeline", Key: 'l', KeyPos: 4},
	{Name: "Terminated", Key: 'e', KeyPos: 1},
	{Name: "Directorates", Key: 'd', KeyPos: 0},
	{Name: "Impact", Key: 'i', KeyPos: 0},
	{Name: "Alignment", Key: 'a', KeyPos: 0},
}

// TabVisualWidth returns the rendered cell width of a tab. Inactive tabs
// carry a [k] shortcut marker; active tabs render the bare name. Mouse
// hit-testing depends on this matching RenderTabBar exactly.
func TabVisualWidth(tab Tab, active bool) int {
	w := len(tab.Name) + 2 // leading + trailing space
	if !active {
		w += 2 // the [ ] around the shortcut key
		if tab.KeyPos < 0 {
			w++ // key appended after the name
		}
	}
	return w
}

// RenderTabBar renders the single-row tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var bar string
	for i, tab := range Tabs {
		if i == activeIdx {
			bar += activeStyle.Render(" " + tab.Name + " ")
		} else if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			before := tab.Name[:tab.KeyPos]
			key := string(tab.Name[tab.KeyPos])
			after := tab.Name[tab.KeyPos+1:]
			bar += inactiveStyle.Render(" "+before) +
				dimStyle.Render("[") + keyStyle.Render(key) + dimStyle.Render("]") +
				inactiveStyle.Render(after+" ")
		} else {
			bar += inactiveStyle.Render(" "+tab.Name) +
				dimStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimStyle.Render("]") +
				inactiveStyle.Render(" ")
		}
		if i < len(Tabs)-1 {
			bar += dimStyle.Render("│")
		}
	}

	fillStyle := lipgloss.NewStyle().Background(t.Surface).Width(width)
	return fillStyle.Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// TabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func TabAtX(x, activeIdx int) int {
	pos := 0
	for i, tab := range Tabs {
		tabW := TabVisualWidth(tab, i == activeIdx)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(Tabs)-1 {
			pos++ // separator column
		}
	}
	return -1
}
