// SPDX-License-Identifier: MIT

// Package day04 solves the word search: XMAS in any of eight directions,
// then MAS crosses.
package day04

import (
	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Solver registers day 4.
var Solver = puzzle.Solver{
	Day:   4,
	Title: "Ceres Search",
	Notes: `Word search over a letter grid.

* **Part 1:** count every occurrence of ` + "`XMAS`" + ` written in any of the eight directions.
* **Part 2:** count every ` + "`A`" + ` whose two diagonals both read ` + "`MAS`" + ` or ` + "`SAM`" + `.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Solve parses the grid and counts both patterns.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: puzzle.Itoa(CountWord(g, "XMAS")),
		Part2: puzzle.Itoa(CountCrosses(g)),
	}, nil
}

// CountWord counts the occurrences of word along every Conn8 direction.
func CountWord(g *gridgraph.Grid, word string) int {
	letters := []rune(word)
	total := 0
	for _, start := range g.FindAll(letters[0]) {
		for _, d := range gridgraph.Dirs8 {
			if spells(g, start, d, letters) {
				total++
			}
		}
	}
	return total
}

func spells(g *gridgraph.Grid, p gridgraph.Point, d gridgraph.Dir, letters []rune) bool {
	for _, r := range letters {
		if g.At(p) != r {
			return false
		}
		p = p.Move(d)
	}
	return true
}

// CountCrosses counts the A cells centred on two diagonal MAS words.
func CountCrosses(g *gridgraph.Grid) int {
	total := 0
	for _, a := range g.FindAll('A') {
		if diagonalMAS(g, a, gridgraph.NorthWest, gridgraph.SouthEast) &&
			diagonalMAS(g, a, gridgraph.NorthEast, gridgraph.SouthWest) {
			total++
		}
	}
	return total
}

// diagonalMAS reports whether the cells on either side of a are one M and one S.
func diagonalMAS(g *gridgraph.Grid, a gridgraph.Point, d1, d2 gridgraph.Dir) bool {
	x, y := g.At(a.Move(d1)), g.At(a.Move(d2))
	return (x == 'M' && y == 'S') || (x == 'S' && y == 'M')
}
