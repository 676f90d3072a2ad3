package pipeline

import (
	"testing"

	"nsfgrants/internal/model"
)

func TestExpandFacts_OneFactPerActiveYear(t *testing.T) {
	g := grant(t, "2100001", 2023, 500000)
	g.EffectiveDate = mustDate(t, "2021-03-01")
	g.ExpirationDate = mustDate(t, "2023-08-31")

	facts := ExpandFacts([]model.GrantRecord{g})

	if len(facts) != 3 {
		t.Fatalf("got %d facts, want 3 (2021-2023)", len(facts))
	}
	years := map[int]bool{}
	for _, f := range facts {
		if years[f.Year] {
			t.Fatalf("duplicate fact for year %d", f.Year)
		}
		years[f.Year] = true
	}
	for _, y := range []int{2021, 2022, 2023} {
		if !years[y] {
			t.Fatalf("missing fact for year %d", y)
		}
	}
}

func TestExpandFacts_ClipsToReportingWindow(t *testing.T) {
	g := grant(t, "1800001", 2020, 500000)
	g.EffectiveDate = mustDate(t, "2015-01-01")
	g.ExpirationDate = mustDate(t, "2030-12-31")

	facts := ExpandFacts([]model.GrantRecord{g})

	if len(facts) != model.LastYear-model.FirstYear+1 {
		t.Fatalf("got %d facts, want %d", len(facts), model.LastYear-model.FirstYear+1)
	}
	for _, f := range facts {
		if f.Year < model.FirstYear || f.Year > model.LastYear {
			t.Fatalf("fact outside window: %d", f.Year)
		}
	}
}

func TestExpandFacts_AlignmentFollowsYear(t *testing.T) {
	g := grant(t, "2100002", 2023, 500000)
	g.EffectiveDate = mustDate(t, "2022-01-01")
	g.ExpirationDate = mustDate(t, "2025-12-31")
	g.Alignment2020 = model.AlignmentBlue
	g.Alignment2024 = model.AlignmentRed

	for _, f := range ExpandFacts([]model.GrantRecord{g}) {
		want := model.AlignmentBlue
		if f.Year >= 2024 {
			want = model.AlignmentRed
		}
		if f.Alignment != want {
			t.Fatalf("year %d alignment = %q, want %q", f.Year, f.Alignment, want)
		}
	}
}

func TestAggregateStates_TerminationAttributedToFinalYearOnly(t *testing.T) {
	g := grant(t, "2100003", 2025, 500000)
	g.EffectiveDate = mustDate(t, "2023-01-01")
	g.ExpirationDate = mustDate(t, "2025-12-31")
	g.Terminated = true

	stats := AggregateStates(ExpandFacts([]model.GrantRecord{g}))

	for _, s := range stats {
		want := 0
		if s.Year == model.LastYear {
			want = 1
		}
		if s.Terminated != want {
			t.Fatalf("year %d Terminated = %d, want %d", s.Year, s.Terminated, want)
		}
	}
}

func TestAggregateStates_TerminationRequiresActivityInFinalYear(t *testing.T) {
	// Terminated but expired in 2023: no active-2025 fact, so no attribution
	g := grant(t, "2000004", 2025, 500000)
	g.EffectiveDate = mustDate(t, "2020-01-01")
	g.ExpirationDate = mustDate(t, "2023-06-30")
	g.Terminated = true

	for _, s := range AggregateStates(ExpandFacts([]model.GrantRecord{g})) {
		if s.Terminated != 0 {
			t.Fatalf("year %d attributed a termination for a grant inactive in %d", s.Year, model.LastYear)
		}
	}
}

func TestAggregateStates_ExcludesUnknownStates(t *testing.T) {
	g := grant(t, "2100005", 2025, 500000)
	g.State = "ZZ"

	stats := AggregateStates(ExpandFacts([]model.GrantRecord{g}))
	if len(stats) != 0 {
		t.Fatalf("unknown state aggregated: %+v", stats)
	}
}

func TestAggregateStates_FundingSums(t *testing.T) {
	g1 := grant(t, "2100006", 2025, 300000)
	g2 := grant(t, "2100007", 2025, 200000)
	g1.EffectiveDate = mustDate(t, "2022-01-01")
	g1.ExpirationDate = mustDate(t, "2022-12-31")
	g2.EffectiveDate = mustDate(t, "2022-01-01")
	g2.ExpirationDate = mustDate(t, "2022-12-31")

	stats := AggregateStates(ExpandFacts([]model.GrantRecord{g1, g2}))
	if len(stats) != 1 {
		t.Fatalf("got %d rows, want 1", len(stats))
	}
	if stats[0].ActiveGrants != 2 {
		t.Fatalf("ActiveGrants = %d, want 2", stats[0].ActiveGrants)
	}
	if stats[0].TotalFunding != 500000 {
		t.Fatalf("TotalFunding = %.0f, want 500000", stats[0].TotalFunding)
	}
}

func TestAggregateDirectorates_MainOnly(t *testing.T) {
	g1 := grant(t, "2100008", 2025, 1)
	g2 := grant(t, "2100009", 2025, 1)
	g2.Directorate = "NCSES"

	stats := AggregateDirectorates(ExpandFacts([]model.GrantRecord{g1, g2}))
	for _, d := range stats {
		if d.Directorate != "MPS" {
			t.Fatalf("non-main directorate %q in aggregation", d.Directorate)
		}
	}
	if len(stats) == 0 {
		t.Fatal("main directorate missing from aggregation")
	}
}

func TestTerminationRanking_SortedDescending(t *testing.T) {
	var records []model.GrantRecord
	add := func(id, state string, terminated bool) {
		g := grant(t, id, 2025, 1)
		g.State = state
		g.Terminated = terminated
		records = append(records, g)
	}
	add("1", "TX", true)
	add("2", "TX", true)
	add("3", "CA", true)
	add("4", "NY", false)

	ranking := TerminationRanking(records)
	if len(ranking) != 2 {
		t.Fatalf("got %d ranked states, want 2", len(ranking))
	}
	if ranking[0].State != "TX" || ranking[0].Terminated != 2 {
		t.Fatalf("top = %+v, want TX with 2", ranking[0])
	}
	if ranking[1].State != "CA" {
		t.Fatalf("second = %+v, want CA", ranking[1])
	}
}

func TestSummarize_Totals(t *testing.T) {
	g1 := grant(t, "2100010", 2025, 100000)
	g2 := grant(t, "2100011", 2025, 50000)
	g2.State = "TX"
	g2.Terminated = true

	stats := Summarize([]model.GrantRecord{g1, g2})
	if stats.TotalGrants != 2 {
		t.Fatalf("TotalGrants = %d, want 2", stats.TotalGrants)
	}
	if stats.TotalFunding != 150000 {
		t.Fatalf("TotalFunding = %.0f, want 150000", stats.TotalFunding)
	}
	if stats.TerminatedGrants != 1 || stats.TerminatedFunding != 50000 {
		t.Fatalf("terminated = %d/%.0f, want 1/50000", stats.TerminatedGrants, stats.TerminatedFunding)
	}
	if stats.States != 2 {
		t.Fatalf("States = %d, want 2", stats.States)
	}
	if len(stats.ActiveByYear) != model.LastYear-model.FirstYear+1 {
		t.Fatalf("ActiveByYear has %d entries", len(stats.ActiveByYear))
	}
}

func TestAggregateStates_SumMatchesTotalActive(t *testing.T) {
	records := []model.GrantRecord{
		grant(t, "2100020", 2025, 100000),
		grant(t, "2100021", 2025, 100000),
		grant(t, "2100022", 2025, 100000),
	}
	records[1].State = "TX"
	records[2].State = "NY"
	records[2].EffectiveDate = mustDate(t, "2020-03-01")
	records[2].ExpirationDate = mustDate(t, "2022-09-30")

	facts := ExpandFacts(records)
	stats := AggregateStates(facts)

	for y := model.FirstYear; y <= model.LastYear; y++ {
		total := 0
		for _, g := range records {
			if g.ActiveIn(y) {
				total++
			}
		}
		sum := 0
		for _, s := range stats {
			if s.Year == y {
				sum += s.ActiveGrants
			}
		}
		if sum != total {
			t.Errorf("year %d: per-state sum %d != total active %d", y, sum, total)
		}
	}
}
