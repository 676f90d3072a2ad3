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

// seriesPalette cycles through distinct colors for multi-state series.
func seriesPalette() []lipgloss.Color {
	t := theme.Active
	return []lipgloss.Color{
		t.Accent, t.Orange, t.Green, t.Yellow, t.Blue, t.Red, t.Cyan, t.AccentBright,
	}
}

// timelineSeries builds the line-chart series for the current selection.
// With no selection the single national series (keyed by the empty state
// code) is returned; otherwise one series per selected state.
func (a App) timelineSeries() []components.Series {
	t := theme.Active
	palette := seriesPalette()

	if a.selection.Empty() {
		return []components.Series{{
			Label:  "National",
			Color:  t.Accent,
			Values: lifecycleValues(a.lifeByState[""]),
		}}
	}

	var series []components.Series
	for i, state := range a.selection.States() {
		points, ok := a.lifeByState[state]
		if !ok {
			continue
		}
		series = append(series, components.Series{
			Label:  state,
			Color:  palette[i%len(palette)],
			Values: lifecycleValues(points),
		})
	}
	return series
}

// renderTimelineTab plots monthly active-grant counts.
func (a App) renderTimelineTab(cw, contentH int) string {
	t := theme.Active

	series := a.timelineSeries()

	xLabels := make([]string, 0, model.LastYear-model.FirstYear+1)
	for y := model.FirstYear; y <= model.LastYear; y++ {
		xLabels = append(xLabels, fmt.Sprintf("%d", y))
	}

	chartH := contentH - 8
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 20 {
		chartH = 20
	}

	innerW := components.CardInnerWidth(cw)
	chart := components.LineChart(series, xLabels, innerW, chartH)

	// Legend with series colors and latest values
	var legend strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	for i, s := range series {
		if i > 0 {
			legend.WriteString("   ")
		}
		last := 0.0
		if len(s.Values) > 0 {
			last = s.Values[len(s.Values)-1]
		}
		legend.WriteString(lipgloss.NewStyle().Foreground(s.Color).Bold(true).Render("● " + s.Label))
		legend.WriteString(labelStyle.Render(" " + cli.FormatNumber(int64(last))))
	}

	title := "Active grants over time (monthly)"
	body := chart + "\n\n" + legend.String()
	return components.ContentCard(title, body, cw)
}

func lifecycleValues(points []model.LifecyclePoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = float64(p.ActiveGrants)
	}
	return values
}
