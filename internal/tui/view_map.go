package tui

import (
	"fmt"
	"strings"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/tui/components"
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderMapTab draws the choropleth of active grants per state for the
// selected year. The layout above the map is fixed: mouse hit-testing in
// updateMouse assumes the map's top-left cell sits at (mapOriginX, mapOriginY).
func (a App) renderMapTab(cw, contentH int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(fmt.Sprintf(" Active grants by state · %d ", a.year)))
	b.WriteString(hintStyle.Render("  click to select, shift+click to add"))
	b.WriteString("\n\n")

	// Scale from this year's peak state
	maxActive := 0
	for _, s := range a.stateStats {
		if s.Year == a.year && s.ActiveGrants > maxActive {
			maxActive = s.ActiveGrants
		}
	}

	cells := make(map[string]components.MapCell, len(a.stateYear))
	for state, byYear := range a.stateYear {
		s, ok := byYear[a.year]
		if !ok || !components.HasTile(state) {
			continue
		}
		bg, fg := choroplethColor(s.ActiveGrants, maxActive)
		cells[state] = components.MapCell{
			Bg:       bg,
			Fg:       fg,
			Selected: a.selection.Has(state),
		}
	}

	mapStr := components.RenderMap(cells, a.cursor)
	for _, line := range strings.Split(mapStr, "\n") {
		b.WriteString(strings.Repeat(" ", mapOriginX))
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Legend
	legendStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	b.WriteString("  ")
	b.WriteString(legendStyle.Render("few "))
	for _, c := range []lipgloss.Color{t.Surface, t.AccentDim, t.Cyan, t.Accent, t.AccentBright} {
		b.WriteString(lipgloss.NewStyle().Background(c).Render("  "))
	}
	b.WriteString(legendStyle.Render(" many"))
	b.WriteString("\n\n")

	// Cursor state details
	if byYear, ok := a.stateYear[a.cursor]; ok {
		if s, ok := byYear[a.year]; ok {
			b.WriteString(a.renderStateDetail(s, cw-4))
		}
	}

	return b.String()
}

// choroplethColor buckets a value against the year's max into five fill
// shades, returning background and a readable foreground.
func choroplethColor(value, maxValue int) (lipgloss.Color, lipgloss.Color) {
	t := theme.Active
	if maxValue <= 0 {
		return t.Surface, t.TextMuted
	}
	frac := float64(value) / float64(maxValue)
	switch {
	case frac < 0.05:
		return t.Surface, t.TextMuted
	case frac < 0.25:
		return t.AccentDim, t.TextPrimary
	case frac < 0.5:
		return t.Cyan, t.Background
	case frac < 0.75:
		return t.Accent, t.Background
	default:
		return t.AccentBright, t.Background
	}
}

func (a App) renderStateDetail(s model.StateYearStats, w int) string {
	t := theme.Active

	alignLabel := "no data"
	alignColor := t.TextDim
	switch s.Alignment {
	case model.AlignmentBlue:
		alignLabel = "blue"
		alignColor = t.Blue
	case model.AlignmentRed:
		alignLabel = "red"
		alignColor = t.Red
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	body.WriteString(nameStyle.Render(fmt.Sprintf("%s (%s)", s.StateName, s.State)))
	body.WriteString("\n")
	fmt.Fprintf(&body, "%s %s   %s %s   ",
		labelStyle.Render("active:"),
		valueStyle.Render(cli.FormatNumber(int64(s.ActiveGrants))),
		labelStyle.Render("funding:"),
		valueStyle.Render(cli.FormatAmount(s.TotalFunding)))
	if s.Year == model.LastYear {
		fmt.Fprintf(&body, "%s %s (%s)   ",
			labelStyle.Render("terminated:"),
			valueStyle.Render(cli.FormatNumber(int64(s.Terminated))),
			valueStyle.Render(cli.FormatPercent(s.TerminatedPct)))
	}
	fmt.Fprintf(&body, "%s %s",
		labelStyle.Render("lean:"),
		lipgloss.NewStyle().Foreground(alignColor).Bold(true).Render(alignLabel))

	return "  " + strings.ReplaceAll(components.ContentCard("", body.String(), w), "\n", "\n  ")
}
