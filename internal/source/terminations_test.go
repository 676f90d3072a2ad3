package source

import "testing"

func TestReadTerminationList(t *testing.T) {
	csv := "award_number\n" +
		"2201234\n" +
		" 2205678 \n" +
		"2201234\n" + // duplicate
		"\n"
	path := writeFile(t, t.TempDir(), "terminations.csv", csv)

	ids, err := ReadTerminationList(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2201234", "2205678"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestReadTerminationList_NoHeader(t *testing.T) {
	// A first row containing digits is data, not a header.
	path := writeFile(t, t.TempDir(), "terminations.csv", "2209999\n2208888\n")

	ids, err := ReadTerminationList(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
}
