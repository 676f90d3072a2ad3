package pipeline

import (
	"testing"
	"time"

	"nsfgrants/internal/model"
)

func TestLifecycleSeries_MonthlySamples(t *testing.T) {
	g := grant(t, "2100030", 2025, 1)
	g.EffectiveDate = mustDate(t, "2021-02-15")
	g.ExpirationDate = mustDate(t, "2021-04-10")

	points := LifecycleSeries([]model.GrantRecord{g})

	months := (model.LastYear - model.FirstYear + 1) * 12
	var ca []model.LifecyclePoint
	var national []model.LifecyclePoint
	for _, p := range points {
		switch p.State {
		case "CA":
			ca = append(ca, p)
		case "":
			national = append(national, p)
		}
	}

	if len(ca) != months {
		t.Fatalf("CA series has %d points, want %d", len(ca), months)
	}
	if len(national) != months {
		t.Fatalf("national series has %d points, want %d", len(national), months)
	}

	active := map[string]int{}
	for _, p := range ca {
		active[p.Date.Format("2006-01")] = p.ActiveGrants
	}

	// Not yet effective at Feb 1, active at Mar 1 and Apr 1, expired by May 1
	for month, want := range map[string]int{
		"2021-02": 0,
		"2021-03": 1,
		"2021-04": 1,
		"2021-05": 0,
	} {
		if active[month] != want {
			t.Fatalf("active at %s = %d, want %d", month, active[month], want)
		}
	}

	for _, p := range ca {
		if p.Date.Day() != 1 {
			t.Fatalf("sample not at month start: %v", p.Date)
		}
		if p.Date.Location() != time.UTC {
			t.Fatalf("sample not in UTC: %v", p.Date)
		}
	}
}

func TestLifecycleSeries_NationalSumsStates(t *testing.T) {
	g1 := grant(t, "2100031", 2025, 1)
	g2 := grant(t, "2100032", 2025, 1)
	g2.State = "TX"

	points := LifecycleSeries([]model.GrantRecord{g1, g2})

	for _, p := range points {
		if p.State == "" && p.Date.Equal(mustDate(t, "2022-06-01")) {
			if p.ActiveGrants != 2 {
				t.Fatalf("national at 2022-06 = %d, want 2", p.ActiveGrants)
			}
			return
		}
	}
	t.Fatal("national point for 2022-06 not found")
}
