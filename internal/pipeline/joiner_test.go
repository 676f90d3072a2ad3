package pipeline

import (
	"testing"

	"go.uber.org/zap"

	"nsfgrants/internal/model"
)

func TestJoinTerminations_MarksAndReportsUnmatched(t *testing.T) {
	rep := NewReport()
	records := []model.GrantRecord{
		grant(t, "2200001", 2025, 100000),
		grant(t, "2200002", 2025, 200000),
	}

	JoinTerminations(records, []string{"2200001", "9999999"}, rep, zap.NewNop())

	if !records[0].Terminated {
		t.Fatal("matching award not marked terminated")
	}
	if records[1].Terminated {
		t.Fatal("non-matching award marked terminated")
	}
	if len(rep.UnmatchedTerminations) != 1 || rep.UnmatchedTerminations[0] != "9999999" {
		t.Fatalf("unmatched = %v, want [9999999]", rep.UnmatchedTerminations)
	}
}
