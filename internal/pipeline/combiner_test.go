package pipeline

import (
	"testing"
	"time"

	"nsfgrants/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func grant(t *testing.T, id string, exportYear int, amount float64) model.GrantRecord {
	t.Helper()
	return model.GrantRecord{
		AwardID:        id,
		State:          "CA",
		Directorate:    "MPS",
		EffectiveDate:  mustDate(t, "2021-01-15"),
		ExpirationDate: mustDate(t, "2024-06-30"),
		Amount:         amount,
		ExportYear:     exportYear,
	}
}

func TestCombine_LatestExportWins(t *testing.T) {
	rep := NewReport()
	byYear := map[int][]model.GrantRecord{
		2021: {grant(t, "2100001", 2021, 100000)},
		2023: {grant(t, "2100001", 2023, 250000)},
		2022: {grant(t, "2100001", 2022, 175000)},
	}

	out := Combine(byYear, rep)
	if len(out) != 1 {
		t.Fatalf("Combine returned %d records, want 1", len(out))
	}
	if out[0].ExportYear != 2023 {
		t.Fatalf("kept ExportYear %d, want 2023", out[0].ExportYear)
	}
	if out[0].Amount != 250000 {
		t.Fatalf("kept Amount %.0f, want 250000", out[0].Amount)
	}
	if len(rep.AmountConflicts) != 0 {
		t.Fatalf("cross-year amount differences flagged as conflicts: %v", rep.AmountConflicts)
	}
}

func TestCombine_SameYearAmountConflictFlagged(t *testing.T) {
	rep := NewReport()
	byYear := map[int][]model.GrantRecord{
		2022: {
			grant(t, "2200007", 2022, 100000),
			grant(t, "2200007", 2022, 120000),
		},
	}

	out := Combine(byYear, rep)
	if len(out) != 1 {
		t.Fatalf("Combine returned %d records, want 1", len(out))
	}
	if len(rep.AmountConflicts) != 1 {
		t.Fatalf("got %d amount conflicts, want 1", len(rep.AmountConflicts))
	}
	c := rep.AmountConflicts[0]
	if c.AwardID != "2200007" || c.ExportYear != 2022 {
		t.Fatalf("conflict = %+v, want award 2200007 in 2022", c)
	}
	// Last-read row wins
	if out[0].Amount != 120000 {
		t.Fatalf("kept Amount %.0f, want 120000", out[0].Amount)
	}
}

func TestCombine_SortedByAwardID(t *testing.T) {
	rep := NewReport()
	byYear := map[int][]model.GrantRecord{
		2022: {
			grant(t, "2200300", 2022, 1),
			grant(t, "2200100", 2022, 1),
			grant(t, "2200200", 2022, 1),
		},
	}

	out := Combine(byYear, rep)
	for i := 1; i < len(out); i++ {
		if out[i-1].AwardID > out[i].AwardID {
			t.Fatalf("records not sorted: %s before %s", out[i-1].AwardID, out[i].AwardID)
		}
	}
}
