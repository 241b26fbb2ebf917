// SPDX-License-Identifier: MIT

// Package day15 solves warehouse woes: a robot pushing boxes, first in the
// narrow warehouse and then in the doubled-width one.
package day15

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Cell glyphs.
const (
	Wall     = '#'
	Empty    = '.'
	Robot    = '@'
	Box      = 'O'
	BoxLeft  = '['
	BoxRight = ']'
)

var (
	// ErrNoRobot is returned when the map has no '@'.
	ErrNoRobot = errors.New("day15: warehouse has no robot")
	// ErrBadMove is returned for characters other than ^ > v < in the moves.
	ErrBadMove = errors.New("day15: invalid move")
)

// Solver registers day 15.
var Solver = puzzle.Solver{
	Day:   15,
	Title: "Warehouse Woes",
	Notes: `The robot follows a list of moves, pushing any line of boxes unless a wall stops it.

* **Part 1:** GPS sum (100 × row + column) of all boxes afterwards.
* **Part 2:** the warehouse is twice as wide; boxes are ` + "`[]`" + ` and can push two boxes at once.

A push collects every cell in front of the robot breadth first and moves them together.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Warehouse is a map plus the robot position.
type Warehouse struct {
	Grid  *gridgraph.Grid
	Robot gridgraph.Point
}

// Parse splits the map from the move list.
func Parse(input string) (*Warehouse, []gridgraph.Dir, error) {
	blocks, err := puzzle.Blocks(input)
	if err != nil {
		return nil, nil, err
	}
	if len(blocks) < 1 {
		return nil, nil, puzzle.ErrEmptyInput
	}
	g, err := gridgraph.FromLines(blocks[0])
	if err != nil {
		return nil, nil, err
	}
	w, err := newWarehouse(g)
	if err != nil {
		return nil, nil, err
	}

	var moves []gridgraph.Dir
	for _, b := range blocks[1:] {
		for _, r := range strings.Join(b, "") {
			d, ok := gridgraph.ParseDir(r)
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q", ErrBadMove, r)
			}
			moves = append(moves, d)
		}
	}
	return w, moves, nil
}

func newWarehouse(g *gridgraph.Grid) (*Warehouse, error) {
	p, ok := g.Find(Robot)
	if !ok {
		return nil, ErrNoRobot
	}
	return &Warehouse{Grid: g, Robot: p}, nil
}

// Widen returns the doubled-width warehouse.
func (w *Warehouse) Widen() *Warehouse {
	wide := gridgraph.New(w.Grid.Width*2, w.Grid.Height, Empty)
	for _, p := range w.Grid.Points() {
		left, right := w.Grid.At(p), w.Grid.At(p)
		switch left {
		case Box:
			left, right = BoxLeft, BoxRight
		case Robot:
			right = Empty
		}
		wide.Set(gridgraph.Point{Row: p.Row, Col: 2 * p.Col}, left)
		wide.Set(gridgraph.Point{Row: p.Row, Col: 2*p.Col + 1}, right)
	}
	return &Warehouse{Grid: wide, Robot: gridgraph.Point{Row: w.Robot.Row, Col: 2 * w.Robot.Col}}
}

// Step tries to move the robot one cell in d and reports whether it moved.
func (w *Warehouse) Step(d gridgraph.Dir) bool {
	cells := []gridgraph.Point{w.Robot}
	seen := map[gridgraph.Point]bool{w.Robot: true}
	for i := 0; i < len(cells); i++ {
		q := cells[i].Move(d)
		var push []gridgraph.Point
		switch w.Grid.At(q) {
		case Wall, 0:
			return false
		case Box:
			push = []gridgraph.Point{q}
		case BoxLeft:
			push = []gridgraph.Point{q, q.Move(gridgraph.East)}
		case BoxRight:
			push = []gridgraph.Point{q, q.Move(gridgraph.West)}
		}
		for _, p := range push {
			if !seen[p] {
				seen[p] = true
				cells = append(cells, p)
			}
		}
	}

	values := make([]rune, len(cells))
	for i, p := range cells {
		values[i] = w.Grid.At(p)
		w.Grid.Set(p, Empty)
	}
	for i, p := range cells {
		w.Grid.Set(p.Move(d), values[i])
	}
	w.Robot = w.Robot.Move(d)
	return true
}

// Run applies every move.
func (w *Warehouse) Run(moves []gridgraph.Dir) {
	for _, d := range moves {
		w.Step(d)
	}
}

// GPS sums 100 × row + column over every box (left edge for wide boxes).
func (w *Warehouse) GPS() int {
	total := 0
	for _, r := range []rune{Box, BoxLeft} {
		for _, p := range w.Grid.FindAll(r) {
			total += 100*p.Row + p.Col
		}
	}
	return total
}

// Solve runs the narrow and the wide warehouse.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	w, moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	wide := w.Widen()
	w.Run(moves)
	wide.Run(moves)
	return puzzle.Answer{Part1: puzzle.Itoa(w.GPS()), Part2: puzzle.Itoa(wide.GPS())}, nil
}
