package pipeline

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"nsfgrants/internal/model"
	"nsfgrants/internal/source"
)

func TestLoadClean_ReadsExportedCSV(t *testing.T) {
	g1 := grant(t, "2100001", 2023, 250000)
	g1.Title = "Quantum materials"
	g1.Institution = "UC Berkeley"
	g1.StateName = "California"
	g1.Alignment2020 = model.AlignmentBlue
	g1.Alignment2024 = model.AlignmentBlue

	g2 := grant(t, "2100002", 2024, 90000)
	g2.State = "TX"
	g2.StateName = "Texas"
	g2.Terminated = true
	g2.Alignment2020 = model.AlignmentRed
	g2.Alignment2024 = model.AlignmentRed

	path := filepath.Join(t.TempDir(), "nsf_data_clean.csv")
	if err := source.WriteCleanCSV([]model.GrantRecord{g1, g2}, path); err != nil {
		t.Fatalf("WriteCleanCSV: %v", err)
	}

	result, err := LoadClean(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadClean: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("LoadClean returned %d records, want 2", len(result.Records))
	}
	if !result.Report.Empty() {
		t.Fatalf("LoadClean produced a non-empty report: %+v", result.Report)
	}

	got := result.Records[0]
	if got.AwardID != "2100001" || got.Amount != 250000 || got.Alignment2020 != model.AlignmentBlue {
		t.Fatalf("first record mismatch: %+v", got)
	}
	if !result.Records[1].Terminated {
		t.Fatalf("second record lost its terminated flag")
	}
}

func TestLoadClean_MissingFile(t *testing.T) {
	_, err := LoadClean(filepath.Join(t.TempDir(), "absent.csv"), zap.NewNop())
	if err == nil {
		t.Fatal("LoadClean succeeded on a missing file")
	}
}
