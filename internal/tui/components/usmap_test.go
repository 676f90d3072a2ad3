package components

import "testing"

func TestCellAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"top-left corner is Alaska", 0, 0, "AK"},
		{"inside Alaska tile", MapCellW - 1, MapCellH - 1, "AK"},
		{"California", 0, 4 * MapCellH, "CA"},
		{"Texas", 3 * MapCellW, 7 * MapCellH, "TX"},
		{"empty grid space", 5 * MapCellW, 0, ""},
		{"negative x", -1, 0, ""},
		{"below map", 0, MapHeight, ""},
		{"right of map", MapWidth, 0, ""},
	}
	for _, tt := range tests {
		if got := CellAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: CellAt(%d, %d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTileGridCoversKnownStates(t *testing.T) {
	if len(tileGrid) != 52 {
		t.Errorf("tileGrid has %d tiles, want 52", len(tileGrid))
	}
	for _, st := range []string{"DC", "PR", "HI", "AK"} {
		if !HasTile(st) {
			t.Errorf("no tile for %s", st)
		}
	}
	// No two states may share a tile.
	if len(stateAtTile) != len(tileGrid) {
		t.Errorf("tile collision: %d positions for %d states", len(stateAtTile), len(tileGrid))
	}
}

func TestNextTile(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
		dx, dy int
		want   string
	}{
		{"right from WA", "WA", 1, 0, "ID"},
		{"down from WA", "WA", 0, 1, "OR"},
		{"skips empty space left of TX", "TX", -1, 0, "HI"},
		{"stops at map edge", "ME", 1, 0, "ME"},
		{"stops at top edge", "AK", 0, -1, "AK"},
		{"empty cursor lands on first tile", "", 1, 0, "AK"},
	}
	for _, tt := range tests {
		if got := NextTile(tt.cursor, tt.dx, tt.dy); got != tt.want {
			t.Errorf("%s: NextTile(%q, %d, %d) = %q, want %q", tt.name, tt.cursor, tt.dx, tt.dy, got, tt.want)
		}
	}
}
