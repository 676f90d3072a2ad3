package source

import (
	"testing"

	"nsfgrants/internal/model"
)

func TestReadElectionResults(t *testing.T) {
	csv := "state,winner\n" +
		"ca,Democrat\n" +
		"TX,republican\n" +
		"vt,blue\n" +
		"wy,RED\n"
	path := writeFile(t, t.TempDir(), "election_2024.csv", csv)

	got, err := ReadElectionResults(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]model.Alignment{
		"CA": model.AlignmentBlue,
		"TX": model.AlignmentRed,
		"VT": model.AlignmentBlue,
		"WY": model.AlignmentRed,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d states, want %d", len(got), len(want))
	}
	for state, a := range want {
		if got[state] != a {
			t.Errorf("state %s: got %q, want %q", state, got[state], a)
		}
	}
}

func TestReadElectionResults_NoHeader(t *testing.T) {
	// Files without a header row parse from the first line.
	path := writeFile(t, t.TempDir(), "election_2020.csv", "CA,democratic\n")

	got, err := ReadElectionResults(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["CA"] != model.AlignmentBlue {
		t.Errorf("CA = %q, want blue", got["CA"])
	}
}

func TestReadElectionResults_UnknownWinnerFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "election_2024.csv", "state,winner\nCA,green\n")
	if _, err := ReadElectionResults(path); err == nil {
		t.Fatal("expected error for unrecognized winner")
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in    string
		want  model.Alignment
		known bool
	}{
		{"Democrat", model.AlignmentBlue, true},
		{"democratic", model.AlignmentBlue, true},
		{"blue", model.AlignmentBlue, true},
		{"Republican", model.AlignmentRed, true},
		{"red", model.AlignmentRed, true},
		{"winner", model.AlignmentUnknown, false},
		{"", model.AlignmentUnknown, false},
	}
	for _, tt := range tests {
		got, known := parseAlignment(tt.in)
		if got != tt.want || known != tt.known {
			t.Errorf("parseAlignment(%q) = (%q, %v), want (%q, %v)", tt.in, got, known, tt.want, tt.known)
		}
	}
}
