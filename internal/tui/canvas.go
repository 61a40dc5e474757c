package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled lines that blocks are composited
// onto. Later placements cover earlier ones cell by cell.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{width: width, lines: lines}
}

// place draws block with its top-left cell at (x, y). Rows and columns that
// fall outside the canvas are clipped.
func (c *canvas) place(block string, x, y int) {
	if x < 0 {
		x = 0
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = splice(c.lines[row], line, x, c.width)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// splice writes src over dst starting at column x, keeping dst's cells on
// either side. The result is never wider than width.
func splice(dst, src string, x, width int) string {
	if x >= width {
		return dst
	}
	if room := width - x; ansi.StringWidth(src) > room {
		src = ansi.Truncate(src, room, "")
	}
	srcWidth := ansi.StringWidth(src)

	left := ansi.Truncate(dst, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	if strings.Contains(left, "\x1b[") {
		left += ansi.ResetStyle
	}

	return left + src + dropColumns(dst, x+srcWidth)
}

// dropColumns removes the first cols cells of s.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}
