package tui

import (
	"fmt"
	"sort"
	"strings"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/tui/components"
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderDirectoratesTab plots active-grant counts per main directorate
// across the reporting window, with 2025 termination rates below.
func (a App) renderDirectoratesTab(cw, contentH int) string {
	t := theme.Active

	type dirRow struct {
		directorate string
		latest      model.DirectorateYearStats
		trend       []float64
	}

	byDir := make(map[string]*dirRow)
	for _, d := range a.dirStats {
		row, ok := byDir[d.Directorate]
		if !ok {
			row = &dirRow{
				directorate: d.Directorate,
				trend:       make([]float64, model.LastYear-model.FirstYear+1),
			}
			byDir[d.Directorate] = row
		}
		row.trend[d.Year-model.FirstYear] = float64(d.ActiveGrants)
		if d.Year == model.LastYear {
			row.latest = d
		}
	}

	rows := make([]*dirRow, 0, len(byDir))
	for _, row := range byDir {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].latest.ActiveGrants > rows[j].latest.ActiveGrants
	})

	palette := seriesPalette()
	series := make([]components.Series, 0, len(rows))
	for i, row := range rows {
		series = append(series, components.Series{
			Label:  row.directorate,
			Color:  palette[i%len(palette)],
			Values: row.trend,
		})
	}

	xLabels := make([]string, 0, model.LastYear-model.FirstYear+1)
	for y := model.FirstYear; y <= model.LastYear; y++ {
		xLabels = append(xLabels, fmt.Sprintf("%d", y))
	}

	chartH := contentH - len(rows) - 10
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 16 {
		chartH = 16
	}

	innerW := components.CardInnerWidth(cw)
	chart := components.LineChart(series, xLabels, innerW, chartH)

	var legend strings.Builder
	for i, s := range series {
		if i > 0 {
			legend.WriteString("  ")
		}
		legend.WriteString(lipgloss.NewStyle().Foreground(s.Color).Bold(true).Render("● " + s.Label))
	}

	out := components.ContentCard("Active grants per directorate", chart+"\n\n"+legend.String(), cw)
	out += "\n"

	// Termination rates for the final year, worst first
	rateRows := make([]*dirRow, len(rows))
	copy(rateRows, rows)
	sort.Slice(rateRows, func(i, j int) bool {
		return rateRows[i].latest.TerminatedPct > rateRows[j].latest.TerminatedPct
	})

	barW := innerW - 30
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	countStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	var body strings.Builder
	for _, row := range rateRows {
		body.WriteString(components.RateBar(row.directorate, row.latest.TerminatedPct/100, 4, barW))
		body.WriteString(countStyle.Render(fmt.Sprintf("  %s active",
			cli.FormatNumber(int64(row.latest.ActiveGrants)))))
		body.WriteString("\n")
	}

	out += components.ContentCard(
		fmt.Sprintf("Termination rate · %d", model.LastYear),
		strings.TrimRight(body.String(), "\n"), cw)
	return out
}
