// Package overlay stamps a rendered block (dialog, help) over the page below
// it and reports the cells the block covers, so clicks can be hit-tested.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	xansi "github.com/charmbracelet/x/ansi"
)

// Placement aligns the block on the surface. Zero positions mean centered;
// zero sizes mean the block's own size.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Rect is a cell rectangle on the composed surface.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Resolve returns where block lands on a width x height surface.
func (p Placement) Resolve(width, height int, block string) Rect {
	if block == "" || width <= 0 || height <= 0 {
		return Rect{}
	}
	w := p.Width
	if w <= 0 {
		w = lipgloss.Width(block)
	}
	h := p.Height
	if h <= 0 {
		h = lipgloss.Height(block)
	}
	w, h = min(w, width), min(h, height)
	return Rect{
		X: align(p.Horizontal, width, w, p.MarginX),
		Y: align(p.Vertical, height, h, p.MarginY),
		W: w,
		H: h,
	}
}

// align positions size inside span; the result always fits.
func align(pos lipgloss.Position, span, size, margin int) int {
	if pos == 0 {
		pos = lipgloss.Center
	}
	var at int
	if pos >= lipgloss.Right {
		at = span - size - margin
	} else {
		at = int(float64(span-size) * float64(pos))
	}
	return max(0, min(at, span-size))
}

// Compose draws block over background, which is first cut or padded to
// width x height. Cells outside the returned Rect keep the background,
// styling included.
func Compose(background string, width, height int, block string, p Placement) (string, Rect) {
	rows := canvas(background, width, height)
	r := p.Resolve(width, height, block)
	if r.Empty() {
		return strings.Join(rows, "\n"), r
	}
	lines := strings.Split(block, "\n")
	for i := 0; i < r.H; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		row := rows[r.Y+i]
		rows[r.Y+i] = xansi.Cut(row, 0, r.X) + fit(line, r.W) + xansi.Cut(row, r.X+r.W, width)
	}
	return strings.Join(rows, "\n"), r
}

// canvas keeps the last height lines of view, each exactly width cells.
func canvas(view string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fit(lines[i], width)
	}
	return lines
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := xansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return xansi.Truncate(s, width, "")
}
