package tui

import (
	"fmt"

	"nsfgrants/internal/model"
	"nsfgrants/internal/tui/components"
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderAlignmentTab scatters every state by active grants (X) against
// total funding in millions (Y) for the selected year, colored by the
// year-appropriate election alignment.
func (a App) renderAlignmentTab(cw, contentH int) string {
	t := theme.Active

	var points []components.ScatterPoint
	for _, s := range a.stateStats {
		if s.Year != a.year {
			continue
		}
		color := t.TextMuted
		switch s.Alignment {
		case model.AlignmentBlue:
			color = t.Blue
		case model.AlignmentRed:
			color = t.Red
		}
		points = append(points, components.ScatterPoint{
			Label:    s.State,
			X:        float64(s.ActiveGrants),
			Y:        s.TotalFunding / 1e6,
			Color:    color,
			Selected: a.selection.Has(s.State),
		})
	}

	// Trajectory trail for selected states: earlier years as small dots
	for _, state := range a.selection.States() {
		byYear, ok := a.stateYear[state]
		if !ok {
			continue
		}
		for y := model.FirstYear; y < a.year; y++ {
			s, ok := byYear[y]
			if !ok {
				continue
			}
			color := t.TextMuted
			switch s.Alignment {
			case model.AlignmentBlue:
				color = t.Blue
			case model.AlignmentRed:
				color = t.Red
			}
			points = append(points, components.ScatterPoint{
				X:     float64(s.ActiveGrants),
				Y:     s.TotalFunding / 1e6,
				Color: color,
				Trail: true,
			})
		}
	}

	chartH := contentH - 8
	if chartH < 8 {
		chartH = 8
	}
	if chartH > 24 {
		chartH = 24
	}

	innerW := components.CardInnerWidth(cw)
	chart := components.ScatterPlot(points, "active grants", "funding $M", innerW, chartH)

	legend := lipgloss.NewStyle().Foreground(t.Blue).Bold(true).Render("● blue") + "  " +
		lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("● red") + "  " +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render("● no data") + "  " +
		lipgloss.NewStyle().Foreground(t.TextDim).Render("◆ selected · trail since 2020")

	cycle := 2020
	if a.year >= 2024 {
		cycle = 2024
	}
	title := fmt.Sprintf("Grants vs funding · %d (alignment from %d election)", a.year, cycle)
	return components.ContentCard(title, chart+"\n\n"+legend, cw)
}
