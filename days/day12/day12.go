// SPDX-License-Identifier: MIT

// Package day12 solves garden groups: fence prices per region by perimeter
// and by number of sides.
package day12

import (
	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Solver registers day 12.
var Solver = puzzle.Solver{
	Day:   12,
	Title: "Garden Groups",
	Notes: `Regions are orthogonally connected plots of the same plant.

* **Part 1:** price = area × perimeter.
* **Part 2:** price = area × number of straight sides.

A polygon has as many sides as corners, so sides are counted as convex plus concave corners.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Plot summarises one region.
type Plot struct {
	Plant     rune
	Area      int
	Perimeter int
	Sides     int
}

// Measure computes area, perimeter and side count for every region of g.
func Measure(g *gridgraph.Grid) []Plot {
	regions := g.Components(gridgraph.Conn4)
	plots := make([]Plot, 0, len(regions))
	for _, r := range regions {
		in := make(map[gridgraph.Point]bool, len(r.Cells))
		for _, p := range r.Cells {
			in[p] = true
		}
		plot := Plot{Plant: r.Value, Area: len(r.Cells)}
		for _, p := range r.Cells {
			for _, d := range gridgraph.Dirs4 {
				if !in[p.Move(d)] {
					plot.Perimeter++
				}
			}
			plot.Sides += corners(in, p)
		}
		plots = append(plots, plot)
	}
	return plots
}

// corners counts the region corners touching cell p. For each pair of
// adjacent orthogonal directions (a, b) the corner is convex when neither
// neighbor is in the region, and concave when both are but the diagonal
// between them is not.
func corners(in map[gridgraph.Point]bool, p gridgraph.Point) int {
	n := 0
	for _, a := range gridgraph.Dirs4 {
		b := a.TurnRight()
		na, nb := in[p.Move(a)], in[p.Move(b)]
		diag := in[p.Move(a).Move(b)]
		if !na && !nb {
			n++
		} else if na && nb && !diag {
			n++
		}
	}
	return n
}

// Solve prices every region both ways.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var byPerimeter, bySides int
	for _, p := range Measure(g) {
		byPerimeter += p.Area * p.Perimeter
		bySides += p.Area * p.Sides
	}
	return puzzle.Answer{Part1: puzzle.Itoa(byPerimeter), Part2: puzzle.Itoa(bySides)}, nil
}
