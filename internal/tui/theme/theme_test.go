package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) returned %q", th.Name, got.Name)
		}
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("unknown name fell back to %q, want %q", got.Name, FlexokiDark.Name)
	}
}
