// SPDX-License-Identifier: MIT

// Package day08 solves resonant collinearity: antinodes of same-frequency
// antenna pairs.
package day08

import (
	"sort"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Solver registers day 8.
var Solver = puzzle.Solver{
	Day:   8,
	Title: "Resonant Collinearity",
	Notes: `Every non-` + "`.`" + ` cell is an antenna; equal characters share a frequency.

* **Part 1:** for each ordered pair (a, b) of the same frequency, the cell a-(b-a) is an antinode.
* **Part 2:** every in-bounds cell on the line through a pair, at whole multiples of b-a, is an antinode.

Count distinct antinode cells.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Antennas groups antenna positions by frequency; frequencies are sorted.
func Antennas(g *gridgraph.Grid) ([]rune, map[rune][]gridgraph.Point) {
	byFreq := make(map[rune][]gridgraph.Point)
	for _, p := range g.Points() {
		if r := g.At(p); r != '.' {
			byFreq[r] = append(byFreq[r], p)
		}
	}
	freqs := make([]rune, 0, len(byFreq))
	for r := range byFreq {
		freqs = append(freqs, r)
	}
	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })
	return freqs, byFreq
}

// Antinodes returns the distinct antinode cells. resonant selects part 2.
func Antinodes(g *gridgraph.Grid, resonant bool) map[gridgraph.Point]bool {
	nodes := make(map[gridgraph.Point]bool)
	freqs, byFreq := Antennas(g)
	for _, f := range freqs {
		pts := byFreq[f]
		for _, a := range pts {
			for _, b := range pts {
				if a == b {
					continue
				}
				step := b.Sub(a)
				if !resonant {
					if c := a.Sub(step); g.InBounds(c) {
						nodes[c] = true
					}
					continue
				}
				for k := 0; ; k++ {
					c := a.Sub(step.Scale(k))
					if !g.InBounds(c) {
						break
					}
					nodes[c] = true
				}
			}
		}
	}
	return nodes
}

// Solve counts antinodes for both rules.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: puzzle.Itoa(len(Antinodes(g, false))),
		Part2: puzzle.Itoa(len(Antinodes(g, true))),
	}, nil
}
