package components

import (
	"fmt"
	"strings"

	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one line in a LineChart. All series share the X axis; shorter
// series are left-aligned.
type Series struct {
	Label  string
	Color  lipgloss.Color
	Values []float64
}

// LineChart plots one or more series as colored point rows with a shared
// Y axis. Later series draw over earlier ones where they collide.
func LineChart(series []Series, xLabels []string, width, height int) string {
	if len(series) == 0 || width < 15 || height < 3 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	maxLen := 0
	for _, s := range series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
		if len(s.Values) > maxLen {
			maxLen = len(s.Values)
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	if maxLen == 0 {
		return ""
	}

	yLabelW := len(formatChartLabel(maxVal)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	plotW := width - yLabelW - 1
	if plotW < 5 {
		plotW = 5
	}

	// Map each plot column to a source index; compresses long series.
	colIdx := make([]int, plotW)
	for c := range colIdx {
		if plotW == 1 {
			colIdx[c] = 0
		} else {
			colIdx[c] = c * (maxLen - 1) / (plotW - 1)
		}
	}

	type cell struct {
		ch    rune
		color lipgloss.Color
	}
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, plotW)
	}

	for _, s := range series {
		prevRow := -1
		for c := 0; c < plotW; c++ {
			idx := colIdx[c]
			if idx >= len(s.Values) {
				continue
			}
			row := height - 1 - int(s.Values[idx]/maxVal*float64(height-1))
			if row < 0 {
				row = 0
			}
			if row >= height {
				row = height - 1
			}
			ch := '•'
			if prevRow == row {
				ch = '─'
			}
			grid[row][c] = cell{ch: ch, color: s.Color}

			// Fill vertical jumps so steep lines stay connected
			if prevRow >= 0 && prevRow != row {
				lo, hi := prevRow, row
				if lo > hi {
					lo, hi = hi, lo
				}
				for r := lo + 1; r < hi; r++ {
					if grid[r][c].ch == 0 {
						grid[r][c] = cell{ch: '│', color: s.Color}
					}
				}
			}
			prevRow = row
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r := 0; r < height; r++ {
		label := ""
		if r == 0 {
			label = formatChartLabel(maxVal)
		} else if r == height/2 {
			label = formatChartLabel(maxVal / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		run := strings.Builder{}
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(fillStyle.Render(run.String()))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(runColor).Background(t.Surface).Render(run.String()))
			}
			run.Reset()
		}
		for c := 0; c < plotW; c++ {
			cl := grid[r][c]
			color := cl.color
			ch := cl.ch
			if ch == 0 {
				ch = ' '
				color = ""
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(ch)
		}
		flush()
		b.WriteString("\n")
	}

	// X axis
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", plotW)))

	if len(xLabels) > 0 {
		buf := make([]byte, plotW)
		for i := range buf {
			buf[i] = ' '
		}
		// First, middle, last label
		place := func(pos int, lbl string) {
			if pos < 0 || pos+len(lbl) > plotW {
				return
			}
			copy(buf[pos:pos+len(lbl)], lbl)
		}
		place(0, xLabels[0])
		if len(xLabels) > 2 {
			mid := xLabels[len(xLabels)/2]
			place(plotW/2-len(mid)/2, mid)
		}
		if len(xLabels) > 1 {
			last := xLabels[len(xLabels)-1]
			place(plotW-len(last), last)
		}
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}
