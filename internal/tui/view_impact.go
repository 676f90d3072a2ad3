package tui

import (
	"fmt"
	"sort"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/tui/components"
	"nsfgrants/internal/tui/theme"
)

// renderImpactTab summarizes termination impact: metric cards for the
// current scope plus a bar chart comparing directorate termination counts.
func (a App) renderImpactTab(cw, contentH int) string {
	t := theme.Active

	states := a.selectedOrAll()

	active := 0
	funding := 0.0
	terminated := 0
	for _, state := range states {
		s, ok := a.stateYear[state][a.year]
		if !ok {
			continue
		}
		active += s.ActiveGrants
		funding += s.TotalFunding
		terminated += s.Terminated
	}

	scope := "National"
	if !a.selection.Empty() {
		scope = a.selection.Summary()
	}

	termPct := 0.0
	if active > 0 {
		termPct = float64(terminated) / float64(active) * 100
	}
	termDetail := fmt.Sprintf("attributed to %d", model.LastYear)
	if a.year != model.LastYear {
		termDetail = fmt.Sprintf("shown for %d only", model.LastYear)
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Scope", scope, fmt.Sprintf("year %d", a.year)},
		{"Active Grants", cli.FormatNumber(int64(active)), ""},
		{"Funding", cli.FormatAmount(funding), ""},
		{"Terminated", cli.FormatNumber(int64(terminated)), termDetail},
		{"Term. Rate", cli.FormatPercent(termPct), ""},
	}

	out := components.MetricCardRow(cards, cw) + "\n"

	// Directorate termination comparison for the final year
	type dirTerm struct {
		directorate string
		terminated  int
	}
	var dirs []dirTerm
	for _, d := range a.dirStats {
		if d.Year == model.LastYear {
			dirs = append(dirs, dirTerm{d.Directorate, d.Terminated})
		}
	}
	sort.Slice(dirs, func(i, j int) bool {
		if dirs[i].terminated != dirs[j].terminated {
			return dirs[i].terminated > dirs[j].terminated
		}
		return dirs[i].directorate < dirs[j].directorate
	})

	values := make([]float64, len(dirs))
	labels := make([]string, len(dirs))
	for i, d := range dirs {
		values[i] = float64(d.terminated)
		labels[i] = d.directorate
	}

	chartH := contentH - 9
	if chartH < 5 {
		chartH = 5
	}
	if chartH > 14 {
		chartH = 14
	}

	innerW := components.CardInnerWidth(cw)
	out += components.ContentCard(
		fmt.Sprintf("Terminated grants by directorate · %d", model.LastYear),
		components.BarChart(values, labels, t.Red, innerW, chartH),
		cw,
	)
	return out
}
