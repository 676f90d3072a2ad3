package pipeline

import (
	"sort"
	"time"

	"nsfgrants/internal/model"
)

// LifecycleSeries samples active-grant counts per state at the start of each
// month across the reporting window. The national series (empty state code in
// the result) sums every known state.
func LifecycleSeries(records []model.GrantRecord) []model.LifecyclePoint {
	byState := make(map[string][]model.GrantRecord)
	for _, g := range records {
		if model.KnownState(g.State) {
			byState[g.State] = append(byState[g.State], g)
		}
	}

	var points []model.LifecyclePoint
	for date := monthStart(model.FirstYear, time.January); date.Year() <= model.LastYear; date = date.AddDate(0, 1, 0) {
		national := 0
		for state, grants := range byState {
			active := 0
			for _, g := range grants {
				if g.ActiveOn(date) {
					active++
				}
			}
			national += active
			points = append(points, model.LifecyclePoint{
				State:        state,
				Date:         date,
				ActiveGrants: active,
			})
		}
		points = append(points, model.LifecyclePoint{Date: date, ActiveGrants: national})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].State != points[j].State {
			return points[i].State < points[j].State
		}
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
