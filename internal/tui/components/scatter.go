package components

import (
	"fmt"
	"strings"

	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ScatterPoint is a single labeled point in a scatter plot. Trail points
// render as small dots under everything else, for per-state trajectories.
type ScatterPoint struct {
	Label    string
	X, Y     float64
	Color    lipgloss.Color
	Selected bool
	Trail    bool
}

// ScatterPlot renders points on an X/Y grid scaled from zero to the data
// maxima. Selected points draw as a bold diamond with their label beside
// them; label text wins over point glyphs when they collide.
func ScatterPlot(points []ScatterPoint, xLabel, yLabel string, width, height int) string {
	if len(points) == 0 || width < 20 || height < 5 {
		return ""
	}
	t := theme.Active

	maxX, maxY := 0.0, 0.0
	for _, p := range points {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	}

	yLabelW := len(formatChartLabel(maxY)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	plotW := width - yLabelW - 1
	if plotW < 10 {
		plotW = 10
	}

	type cell struct {
		ch    rune
		color lipgloss.Color
		bold  bool
	}
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, plotW)
	}

	place := func(p ScatterPoint) {
		col := int(p.X / maxX * float64(plotW-1))
		row := height - 1 - int(p.Y/maxY*float64(height-1))
		if col < 0 || col >= plotW || row < 0 || row >= height {
			return
		}
		ch := '●'
		if p.Trail {
			ch = '·'
		}
		if p.Selected {
			ch = '◆'
		}
		grid[row][col] = cell{ch: ch, color: p.Color, bold: p.Selected}

		if p.Selected && p.Label != "" {
			for i, r := range p.Label {
				c := col + 1 + i
				if c >= plotW {
					break
				}
				grid[row][c] = cell{ch: r, color: p.Color, bold: true}
			}
		}
	}

	// Trails under everything, selected points and labels on top
	for _, p := range points {
		if p.Trail {
			place(p)
		}
	}
	for _, p := range points {
		if !p.Trail && !p.Selected {
			place(p)
		}
	}
	for _, p := range points {
		if p.Selected {
			place(p)
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r := 0; r < height; r++ {
		label := ""
		if r == 0 {
			label = formatChartLabel(maxY)
		} else if r == height/2 {
			label = formatChartLabel(maxY / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for c := 0; c < plotW; c++ {
			cl := grid[r][c]
			if cl.ch == 0 {
				b.WriteString(fillStyle.Render(" "))
				continue
			}
			style := lipgloss.NewStyle().Foreground(cl.color).Background(t.Surface)
			if cl.bold {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(string(cl.ch)))
		}
		b.WriteString("\n")
	}

	// X axis with min/max and axis title
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", plotW)))
	b.WriteString("\n")

	maxLbl := formatChartLabel(maxX)
	axisLine := "0"
	mid := xLabel
	midPos := plotW/2 - len(mid)/2
	pad1 := midPos - len(axisLine)
	if pad1 < 1 {
		pad1 = 1
	}
	pad2 := plotW - len(axisLine) - pad1 - len(mid) - len(maxLbl)
	if pad2 < 1 {
		pad2 = 1
	}
	b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(axisLine + strings.Repeat(" ", pad1) + mid + strings.Repeat(" ", pad2) + maxLbl))

	if yLabel != "" {
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render("↑ " + yLabel))
	}

	return b.String()
}
