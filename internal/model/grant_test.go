package model

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestActiveIn_OverlapBoundaries(t *testing.T) {
	tests := []struct {
		name string
		eff  string
		exp  string
		year int
		want bool
	}{
		{"spans whole year", "2019-06-01", "2026-06-01", 2022, true},
		{"starts on dec 31", "2022-12-31", "2024-01-01", 2022, true},
		{"ends on jan 1", "2020-01-01", "2022-01-01", 2022, true},
		{"expires before year", "2019-01-01", "2021-12-31", 2022, false},
		{"starts after year", "2023-01-01", "2025-01-01", 2022, false},
		{"single day inside year", "2022-07-04", "2022-07-04", 2022, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GrantRecord{
				EffectiveDate:  mustDate(t, tt.eff),
				ExpirationDate: mustDate(t, tt.exp),
			}
			if got := g.ActiveIn(tt.year); got != tt.want {
				t.Fatalf("ActiveIn(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestActiveIn_ZeroDatesNeverActive(t *testing.T) {
	g := GrantRecord{ExpirationDate: mustDate(t, "2025-01-01")}
	if g.ActiveIn(2024) {
		t.Fatal("grant with zero effective date reported active")
	}
	g = GrantRecord{EffectiveDate: mustDate(t, "2020-01-01")}
	if g.ActiveIn(2024) {
		t.Fatal("grant with zero expiration date reported active")
	}
}

func TestAlignmentFor_SwitchesCycleAt2024(t *testing.T) {
	g := GrantRecord{Alignment2020: AlignmentBlue, Alignment2024: AlignmentRed}

	for _, year := range []int{2020, 2021, 2022, 2023} {
		if got := g.AlignmentFor(year); got != AlignmentBlue {
			t.Fatalf("AlignmentFor(%d) = %q, want blue", year, got)
		}
	}
	for _, year := range []int{2024, 2025} {
		if got := g.AlignmentFor(year); got != AlignmentRed {
			t.Fatalf("AlignmentFor(%d) = %q, want red", year, got)
		}
	}
}

func TestMainDirectorate(t *testing.T) {
	for _, dir := range []string{"MPS", "CSE", "ENG", "GEO", "EDU", "BIO", "TIP", "SBE", "O/D"} {
		if !MainDirectorate(dir) {
			t.Fatalf("MainDirectorate(%q) = false, want true", dir)
		}
	}
	if MainDirectorate("NCSES") {
		t.Fatal("MainDirectorate accepted a non-main directorate")
	}
	if MainDirectorate("") {
		t.Fatal("MainDirectorate accepted empty string")
	}
}

func TestKnownState(t *testing.T) {
	for _, s := range []string{"CA", "DC", "PR"} {
		if !KnownState(s) {
			t.Fatalf("KnownState(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"ZZ", "", "GU"} {
		if KnownState(s) {
			t.Fatalf("KnownState(%q) = true, want false", s)
		}
	}
}
