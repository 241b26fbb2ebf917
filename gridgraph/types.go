// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadVertexID indicates a vertex ID that is not of the form "row,col".
	ErrBadVertexID = errors.New("gridgraph: malformed vertex ID")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell position. Row grows downwards, Col grows to the right.
type Point struct {
	Row, Col int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.Row + q.Row, p.Col + q.Col} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.Row - q.Row, p.Col - q.Col} }

// Scale returns p multiplied by k.
func (p Point) Scale(k int) Point { return Point{p.Row * k, p.Col * k} }

// Move returns the neighbor of p in direction d.
func (p Point) Move(d Dir) Point { return p.Add(d.Delta()) }

// String renders p as "row,col".
func (p Point) String() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir is a compass direction. The first four values are the orthogonal
// directions in clockwise order, followed by the diagonals.
type Dir int

const (
	North Dir = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

var deltas = [...]Point{
	North:     {-1, 0},
	East:      {0, 1},
	South:     {1, 0},
	West:      {0, -1},
	NorthEast: {-1, 1},
	SouthEast: {1, 1},
	SouthWest: {1, -1},
	NorthWest: {-1, -1},
}

// Dirs4 lists the orthogonal directions clockwise from North.
var Dirs4 = []Dir{North, East, South, West}

// Dirs8 lists all eight directions clockwise from North.
var Dirs8 = []Dir{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Dirs returns the direction set for conn.
func (c Connectivity) Dirs() []Dir {
	if c == Conn8 {
		return Dirs8
	}
	return Dirs4
}

// Delta returns the (row, col) offset of one step in d.
func (d Dir) Delta() Point { return deltas[d] }

// TurnRight rotates an orthogonal direction 90° clockwise.
func (d Dir) TurnRight() Dir { return (d + 1) % 4 }

// TurnLeft rotates an orthogonal direction 90° counter-clockwise.
func (d Dir) TurnLeft() Dir { return (d + 3) % 4 }

// Reverse returns the opposite orthogonal direction.
func (d Dir) Reverse() Dir { return (d + 2) % 4 }

// String returns the arrow glyph for orthogonal directions.
func (d Dir) String() string {
	switch d {
	case North:
		return "^"
	case East:
		return ">"
	case South:
		return "v"
	case West:
		return "<"
	}
	return "Dir(" + strconv.Itoa(int(d)) + ")"
}

// ParseDir maps an arrow glyph ('^', '>', 'v', '<') to its direction.
func ParseDir(r rune) (Dir, bool) {
	switch r {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}
