package tui

import (
	"fmt"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/tui/components"
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const terminatedTopN = 15

// terminatedRowStates returns the states shown in the terminated view, in
// render order: the top of the ranking plus any selected states beyond it.
// Mouse hit-testing in updateMouse maps clicked rows through this.
func (a App) terminatedRowStates() []string {
	top := a.ranking
	if len(top) > terminatedTopN {
		top = top[:terminatedTopN]
	}
	states := make([]string, 0, len(top))
	for _, st := range top {
		states = append(states, st.State)
	}
	for _, st := range a.ranking[len(top):] {
		if a.selection.Has(st.State) {
			states = append(states, st.State)
		}
	}
	return states
}

// renderTerminatedTab shows the states with the most terminated grants as
// horizontal bars. Selected states are always included even when they fall
// outside the top 15; clicking a row toggles that state.
func (a App) renderTerminatedTab(cw, contentH int) string {
	byState := make(map[string]model.StateTermination, len(a.ranking))
	for _, st := range a.ranking {
		byState[st.State] = st
	}

	var bars []components.HBar
	for _, state := range a.terminatedRowStates() {
		st := byState[state]
		bars = append(bars, components.HBar{
			Label:    fmt.Sprintf("%s (%s)", truncStr(st.StateName, 14), st.State),
			Value:    float64(st.Terminated),
			Color:    a.alignmentColor(st.State),
			Selected: a.selection.Has(st.State),
		})
	}

	innerW := components.CardInnerWidth(cw)
	body := components.HorizontalBars(bars, innerW)

	body += "\n" + fmt.Sprintf("  %s grants terminated nationwide · %s in affected funding",
		cli.FormatNumber(int64(a.summary.TerminatedGrants)),
		cli.FormatAmount(a.summary.TerminatedFunding))

	title := fmt.Sprintf("Terminated grants by state · top %d", terminatedTopN)
	return components.ContentCard(title, body, cw)
}

// alignmentColor colors by the state's most recent election alignment.
func (a App) alignmentColor(state string) lipgloss.Color {
	t := theme.Active
	if byYear, ok := a.stateYear[state]; ok {
		if s, ok := byYear[model.LastYear]; ok {
			switch s.Alignment {
			case model.AlignmentBlue:
				return t.Blue
			case model.AlignmentRed:
				return t.Red
			}
		}
	}
	return t.TextMuted
}
