// SPDX-License-Identifier: MIT

package gridgraph

import (
	"strings"
)

// Grid is a rectangular matrix of runes addressed by Point.
type Grid struct {
	Width, Height int
	cells         [][]rune
}

// Parse splits text into lines and builds a Grid. Trailing blank lines and
// carriage returns are ignored.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return FromLines(strings.Split(strings.TrimRight(text, "\n"), "\n"))
}

// FromLines builds a Grid from one string per row.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(lines))
	for i, line := range lines {
		cells[i] = []rune(line)
		if len(cells[i]) != len(cells[0]) {
			return nil, ErrNonRectangular
		}
	}

	return &Grid{Width: len(cells[0]), Height: len(cells), cells: cells}, nil
}

// New returns a width×height Grid filled with fill.
func New(width, height int, fill rune) *Grid {
	cells := make([][]rune, height)
	for r := range cells {
		cells[r] = make([]rune, width)
		for c := range cells[r] {
			cells[r][c] = fill
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the rune at p, or 0 when p is outside the grid.
func (g *Grid) At(p Point) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Row][p.Col]
}

// Set stores r at p. Points outside the grid are ignored.
func (g *Grid) Set(p Point, r rune) {
	if g.InBounds(p) {
		g.cells[p.Row][p.Col] = r
	}
}

// Find returns the first cell (row-major) holding r.
func (g *Grid) Find(r rune) (Point, bool) {
	for row, line := range g.cells {
		for col, v := range line {
			if v == r {
				return Point{row, col}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell holding r in row-major order.
func (g *Grid) FindAll(r rune) []Point {
	var out []Point
	for row, line := range g.cells {
		for col, v := range line {
			if v == r {
				out = append(out, Point{row, col})
			}
		}
	}
	return out
}

// Points returns every cell position in row-major order.
func (g *Grid) Points() []Point {
	out := make([]Point, 0, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			out = append(out, Point{row, col})
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of p under conn, in the
// clockwise order of conn.Dirs().
func (g *Grid) Neighbors(p Point, conn Connectivity) []Point {
	dirs := conn.Dirs()
	out := make([]Point, 0, len(dirs))
	for _, d := range dirs {
		if q := p.Move(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]rune, len(g.cells))
	for i, row := range g.cells {
		cells[i] = append([]rune(nil), row...)
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// String renders the grid with one line per row and a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for _, row := range g.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
