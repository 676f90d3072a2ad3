package pipeline

import (
	"sort"

	"nsfgrants/internal/model"
)

// ExpandFacts applies the active-year overlap test to every cleaned record,
// emitting one fact per (grant, year) pair the grant is active in. Years
// outside [FirstYear, LastYear] never produce facts, and a grant produces at
// most one fact per year, so groupby sums over facts cannot double-count.
func ExpandFacts(records []model.GrantRecord) []model.ActiveFact {
	var facts []model.ActiveFact
	for _, g := range records {
		for y := model.FirstYear; y <= model.LastYear; y++ {
			if !g.ActiveIn(y) {
				continue
			}
			facts = append(facts, model.ActiveFact{
				AwardID:     g.AwardID,
				Year:        y,
				State:       g.State,
				Directorate: g.Directorate,
				Amount:      g.Amount,
				Terminated:  g.Terminated,
				Alignment:   g.AlignmentFor(y),
			})
		}
	}
	return facts
}

type stateYearKey struct {
	state string
	year  int
}

// AggregateStates groups activity facts into per-state per-year summaries.
// Unknown state codes are excluded here; they were already tallied during
// cleaning. Termination counts are attributed to 2025 only, among grants
// active in 2025.
func AggregateStates(facts []model.ActiveFact) []model.StateYearStats {
	byKey := make(map[stateYearKey]*model.StateYearStats)

	for _, f := range facts {
		if !model.KnownState(f.State) {
			continue
		}
		key := stateYearKey{f.State, f.Year}
		s, ok := byKey[key]
		if !ok {
			s = &model.StateYearStats{
				State:     f.State,
				StateName: model.StateName(f.State),
				Year:      f.Year,
				Alignment: f.Alignment,
			}
			byKey[key] = s
		}
		s.ActiveGrants++
		s.TotalFunding += f.Amount
		if f.Year == model.LastYear && f.Terminated {
			s.Terminated++
		}
	}

	stats := make([]model.StateYearStats, 0, len(byKey))
	for _, s := range byKey {
		if s.ActiveGrants > 0 {
			s.TerminatedPct = float64(s.Terminated) / float64(s.ActiveGrants) * 100
		}
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].State != stats[j].State {
			return stats[i].State < stats[j].State
		}
		return stats[i].Year < stats[j].Year
	})
	return stats
}

type dirYearKey struct {
	directorate string
	year        int
}

// AggregateDirectorates groups activity facts into per-directorate per-year
// summaries, restricted to the main NSF directorates.
func AggregateDirectorates(facts []model.ActiveFact) []model.DirectorateYearStats {
	byKey := make(map[dirYearKey]*model.DirectorateYearStats)

	for _, f := range facts {
		if !model.MainDirectorate(f.Directorate) {
			continue
		}
		key := dirYearKey{f.Directorate, f.Year}
		d, ok := byKey[key]
		if !ok {
			d = &model.DirectorateYearStats{Directorate: f.Directorate, Year: f.Year}
			byKey[key] = d
		}
		d.ActiveGrants++
		if f.Year == model.LastYear && f.Terminated {
			d.Terminated++
		}
	}

	stats := make([]model.DirectorateYearStats, 0, len(byKey))
	for _, d := range byKey {
		if d.ActiveGrants > 0 {
			d.TerminatedPct = float64(d.Terminated) / float64(d.ActiveGrants) * 100
		}
		stats = append(stats, *d)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Directorate != stats[j].Directorate {
			return stats[i].Directorate < stats[j].Directorate
		}
		return stats[i].Year < stats[j].Year
	})
	return stats
}

// TerminationRanking counts terminated grants per state, sorted descending.
func TerminationRanking(records []model.GrantRecord) []model.StateTermination {
	byState := make(map[string]int)
	for _, g := range records {
		if g.Terminated && model.KnownState(g.State) {
			byState[g.State]++
		}
	}

	ranking := make([]model.StateTermination, 0, len(byState))
	for state, n := range byState {
		ranking = append(ranking, model.StateTermination{
			State:      state,
			StateName:  model.StateName(state),
			Terminated: n,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Terminated != ranking[j].Terminated {
			return ranking[i].Terminated > ranking[j].Terminated
		}
		return ranking[i].State < ranking[j].State
	})
	return ranking
}

// Summarize computes dataset-wide totals from the cleaned record set.
func Summarize(records []model.GrantRecord) model.SummaryStats {
	var stats model.SummaryStats
	states := make(map[string]struct{})
	dirs := make(map[string]struct{})
	activeByYear := make(map[int]int)

	for _, g := range records {
		stats.TotalGrants++
		stats.TotalFunding += g.Amount
		if g.Terminated {
			stats.TerminatedGrants++
			stats.TerminatedFunding += g.Amount
		}
		if model.KnownState(g.State) {
			states[g.State] = struct{}{}
		}
		if model.MainDirectorate(g.Directorate) {
			dirs[g.Directorate] = struct{}{}
		}
		for y := model.FirstYear; y <= model.LastYear; y++ {
			if g.ActiveIn(y) {
				activeByYear[y]++
			}
		}
	}

	stats.States = len(states)
	stats.Directorates = len(dirs)
	for y := model.FirstYear; y <= model.LastYear; y++ {
		stats.ActiveByYear = append(stats.ActiveByYear, model.YearCount{Year: y, Count: activeByYear[y]})
	}
	return stats
}
