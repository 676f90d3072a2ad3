package components

import (
	"strings"

	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tile grid geometry. Every state occupies one MapCellW x MapCellH cell;
// CellAt depends on these matching RenderMap exactly.
const (
	MapCellW = 6
	MapCellH = 2
	MapCols  = 11
	MapRows  = 8
)

// MapWidth is the full rendered width of the map in columns.
const MapWidth = MapCols * MapCellW

// MapHeight is the full rendered height of the map in rows.
const MapHeight = MapRows * MapCellH

type tilePos struct {
	row, col int
}

// tileGrid places each state on the familiar squished-USA tile layout.
var tileGrid = map[string]tilePos{
	"AK": {0, 0}, "ME": {0, 10},
	"VT": {1, 9}, "NH": {1, 10},
	"WA": {2, 0}, "ID": {2, 1}, "MT": {2, 2}, "ND": {2, 3}, "MN": {2, 4},
	"IL": {2, 5}, "WI": {2, 6}, "MI": {2, 7}, "NY": {2, 8}, "RI": {2, 9}, "MA": {2, 10},
	"OR": {3, 0}, "NV": {3, 1}, "WY": {3, 2}, "SD": {3, 3}, "IA": {3, 4},
	"IN": {3, 5}, "OH": {3, 6}, "PA": {3, 7}, "NJ": {3, 8}, "CT": {3, 9},
	"CA": {4, 0}, "UT": {4, 1}, "CO": {4, 2}, "NE": {4, 3}, "MO": {4, 4},
	"KY": {4, 5}, "WV": {4, 6}, "VA": {4, 7}, "MD": {4, 8}, "DE": {4, 9},
	"AZ": {5, 1}, "NM": {5, 2}, "KS": {5, 3}, "AR": {5, 4}, "TN": {5, 5},
	"NC": {5, 6}, "SC": {5, 7}, "DC": {5, 8},
	"OK": {6, 3}, "LA": {6, 4}, "MS": {6, 5}, "AL": {6, 6}, "GA": {6, 7},
	"HI": {7, 0}, "TX": {7, 3}, "FL": {7, 8}, "PR": {7, 10},
}

// stateAtTile is the reverse lookup, built once.
var stateAtTile = func() map[tilePos]string {
	m := make(map[tilePos]string, len(tileGrid))
	for state, pos := range tileGrid {
		m[pos] = state
	}
	return m
}()

// MapCell carries the render state for a single state tile.
type MapCell struct {
	Bg       lipgloss.Color
	Fg       lipgloss.Color
	Selected bool
}

// CellAt returns the state code under the given map-local coordinates,
// or "" when the coordinates fall on empty grid space.
func CellAt(x, y int) string {
	if x < 0 || y < 0 || x >= MapWidth || y >= MapHeight {
		return ""
	}
	pos := tilePos{row: y / MapCellH, col: x / MapCellW}
	return stateAtTile[pos]
}

// HasTile reports whether a state code has a position on the map.
func HasTile(state string) bool {
	_, ok := tileGrid[state]
	return ok
}

// RenderMap renders the tile-grid map. cells supplies the fill for each
// state; states missing from cells render dimmed. cursor names the state
// under the keyboard cursor ("" for none).
func RenderMap(cells map[string]MapCell, cursor string) string {
	t := theme.Active

	emptyStyle := lipgloss.NewStyle().Background(t.Background)
	missingStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	for row := 0; row < MapRows; row++ {
		var line1, line2 strings.Builder
		for col := 0; col < MapCols; col++ {
			state, ok := stateAtTile[tilePos{row, col}]
			if !ok {
				blank := emptyStyle.Render(strings.Repeat(" ", MapCellW))
				line1.WriteString(blank)
				line2.WriteString(blank)
				continue
			}

			cell, have := cells[state]
			style := missingStyle
			if have {
				style = lipgloss.NewStyle().Foreground(cell.Fg).Background(cell.Bg)
				if cell.Selected {
					style = style.Bold(true)
				}
			}

			label := "  " + state + "  "
			if state == cursor {
				label = "▸ " + state + " ◂"
			}
			line1.WriteString(style.Render(label))

			under := strings.Repeat(" ", MapCellW)
			if have && cell.Selected {
				under = " ════ "
			}
			line2.WriteString(style.Render(under))
		}
		b.WriteString(line1.String())
		b.WriteString("\n")
		b.WriteString(line2.String())
		if row < MapRows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// NextTile moves the keyboard cursor one tile in the given direction,
// skipping empty grid space. dx/dy are -1, 0, or 1. When cursor is empty
// the first tile in reading order is returned.
func NextTile(cursor string, dx, dy int) string {
	pos, ok := tileGrid[cursor]
	if !ok {
		return "AK"
	}
	row, col := pos.row, pos.col
	for i := 0; i < MapCols*MapRows; i++ {
		col += dx
		row += dy
		if col < 0 || col >= MapCols || row < 0 || row >= MapRows {
			return cursor
		}
		if s, ok := stateAtTile[tilePos{row, col}]; ok {
			return s
		}
	}
	return cursor
}
