package tui

import "testing"

func TestSelection_ReplaceThenToggle(t *testing.T) {
	var s Selection

	s.Replace("CA")
	if got := s.States(); len(got) != 1 || got[0] != "CA" {
		t.Fatalf("after Replace(CA): %v", got)
	}

	s.Toggle("TX")
	got := s.States()
	if len(got) != 2 || got[0] != "CA" || got[1] != "TX" {
		t.Fatalf("after Toggle(TX): %v, want [CA TX]", got)
	}
}

func TestSelection_ReplaceSoleSelectionClears(t *testing.T) {
	var s Selection
	s.Replace("CA")
	s.Replace("CA")
	if !s.Empty() {
		t.Errorf("re-clicking the sole selection should clear it, got %v", s.States())
	}

	// With more than one selected, Replace narrows instead of clearing.
	s.Replace("CA")
	s.Toggle("TX")
	s.Replace("CA")
	if got := s.States(); len(got) != 1 || got[0] != "CA" {
		t.Errorf("Replace on multi-selection: %v, want [CA]", got)
	}
}

func TestSelection_ToggleRemovalKeepsOrder(t *testing.T) {
	var s Selection
	for _, st := range []string{"CA", "TX", "NY", "VT"} {
		s.Toggle(st)
	}
	s.Toggle("TX")

	got := s.States()
	want := []string{"CA", "NY", "VT"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("states[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if s.Has("TX") {
		t.Error("TX still selected after toggle-off")
	}
}

func TestSelection_Clear(t *testing.T) {
	var s Selection
	s.Toggle("CA")
	s.Toggle("TX")
	s.Clear()
	if !s.Empty() || s.Len() != 0 {
		t.Errorf("Clear left %v", s.States())
	}
}

func TestSelection_Summary(t *testing.T) {
	var s Selection
	if s.Summary() != "" {
		t.Errorf("empty selection summary = %q, want empty", s.Summary())
	}

	for _, st := range []string{"CA", "TX", "NY", "VT"} {
		s.Toggle(st)
	}
	if got := s.Summary(); got != "CA,TX,NY,VT" {
		t.Errorf("4-state summary = %q", got)
	}

	s.Toggle("WA")
	if got := s.Summary(); got != "CA,TX,NY+2" {
		t.Errorf("5-state summary = %q, want CA,TX,NY+2", got)
	}
}
