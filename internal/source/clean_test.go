package source

import (
	"path/filepath"
	"testing"
	"time"

	"nsfgrants/internal/model"
)

func TestCleanCSV_RoundTrip(t *testing.T) {
	in := []model.GrantRecord{
		{
			AwardID:        "2201234",
			Title:          "Quantum Widgets, Phase II",
			Institution:    "Caltech",
			State:          "CA",
			StateName:      "California",
			Directorate:    "MPS",
			EffectiveDate:  time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC),
			ExpirationDate: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
			Amount:         1234567.89,
			ExportYear:     2025,
			Terminated:     true,
			Alignment2020:  model.AlignmentBlue,
			Alignment2024:  model.AlignmentBlue,
		},
	}
	path := filepath.Join(t.TempDir(), "grants_clean.csv")

	if err := WriteCleanCSV(in, path); err != nil {
		t.Fatalf("WriteCleanCSV: %v", err)
	}
	out, err := ReadCleanCSV(path)
	if err != nil {
		t.Fatalf("ReadCleanCSV: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}

	got, want := out[0], in[0]
	if got.AwardID != want.AwardID || got.Title != want.Title || got.State != want.State {
		t.Errorf("identity fields differ: got %+v", got)
	}
	if !got.EffectiveDate.Equal(want.EffectiveDate) || !got.ExpirationDate.Equal(want.ExpirationDate) {
		t.Errorf("dates differ: got eff=%v exp=%v", got.EffectiveDate, got.ExpirationDate)
	}
	if got.Amount != want.Amount {
		t.Errorf("Amount = %v, want %v", got.Amount, want.Amount)
	}
	if !got.Terminated || got.Alignment2020 != model.AlignmentBlue {
		t.Errorf("flags differ: terminated=%v alignment2020=%q", got.Terminated, got.Alignment2020)
	}
}
