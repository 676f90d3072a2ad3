package components

import "testing"

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'m', 0},
		{'l', 1},
		{'e', 2},
		{'d', 3},
		{'i', 4},
		{'a', 5},
		{'z', -1},
	}
	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestTabAtX(t *testing.T) {
	// With Map active: " Map " is 5 wide, then a separator, then
	// " Timel[l]ine " starts at x=6.
	if got := TabAtX(0, 0); got != 0 {
		t.Errorf("TabAtX(0) = %d, want 0", got)
	}
	if got := TabAtX(4, 0); got != 0 {
		t.Errorf("TabAtX(4) = %d, want 0", got)
	}
	if got := TabAtX(6, 0); got != 1 {
		t.Errorf("TabAtX(6) = %d, want 1", got)
	}

	// Every x inside the bar must resolve to a tab or a separator; hitting
	// one past the total width must miss.
	total := 0
	for i, tab := range Tabs {
		total += TabVisualWidth(tab, i == 0)
		if i < len(Tabs)-1 {
			total++
		}
	}
	if got := TabAtX(total, 0); got != -1 {
		t.Errorf("TabAtX(%d) past the bar = %d, want -1", total, got)
	}
	if got := TabAtX(total-1, 0); got != len(Tabs)-1 {
		t.Errorf("TabAtX(%d) = %d, want last tab", total-1, got)
	}
}

func TestTabVisualWidth(t *testing.T) {
	// Active tabs drop the shortcut brackets.
	tab := Tabs[0] // Map, key in name
	if got := TabVisualWidth(tab, true); got != len("Map")+2 {
		t.Errorf("active width = %d", got)
	}
	if got := TabVisualWidth(tab, false); got != len("Map")+4 {
		t.Errorf("inactive width = %d", got)
	}
}
