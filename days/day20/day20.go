// SPDX-License-Identifier: MIT

// Package day20 solves race condition: shortcuts through the walls of a
// single racetrack.
package day20

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent2024/bfs"
	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/logging"
	"github.com/katalvlaran/advent2024/puzzle"
)

var (
	// ErrMissingMarker is returned when S or E is absent.
	ErrMissingMarker = errors.New("day20: track needs one S and one E")
	// ErrNoPath is returned when the track does not connect S and E.
	ErrNoPath = errors.New("day20: end is unreachable")
)

// Solver registers day 20.
var Solver = puzzle.Solver{
	Day:   20,
	Title: "Race Condition",
	Notes: `A program races from S to E along the track. Once per race it may cheat:
disable collision for a few picoseconds and pass through walls.

* **Part 1:** cheats of up to 2 picoseconds that save at least 100.
* **Part 2:** cheats of up to 20 picoseconds that save at least 100.

Breadth-first distances from S and from E give every cheat's saving: a jump
from a to b of Manhattan length d saves ` + "`best - (fromStart[a] + d + toEnd[b])`" + `.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Track holds breadth-first distances from both ends of the race.
type Track struct {
	Grid      *gridgraph.Grid
	Best      int
	fromStart map[gridgraph.Point]int
	toEnd     map[gridgraph.Point]int
}

// Parse reads the racetrack and measures it.
func Parse(input string) (*Track, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, err
	}
	start, okS := g.Find('S')
	end, okE := g.Find('E')
	if !okS || !okE {
		return nil, ErrMissingMarker
	}
	cg, err := g.ToCoreGraph(func(r rune) bool { return r != '#' })
	if err != nil {
		return nil, err
	}

	distances := func(from gridgraph.Point) (map[gridgraph.Point]int, error) {
		res, err := bfs.BFS(cg, gridgraph.VertexID(from))
		if err != nil {
			return nil, err
		}
		out := make(map[gridgraph.Point]int, len(res.Depth))
		for id, d := range res.Depth {
			p, err := gridgraph.ParseVertexID(id)
			if err != nil {
				return nil, err
			}
			out[p] = d
		}
		return out, nil
	}

	t := &Track{Grid: g}
	if t.fromStart, err = distances(start); err != nil {
		return nil, err
	}
	if t.toEnd, err = distances(end); err != nil {
		return nil, err
	}
	best, ok := t.fromStart[end]
	if !ok {
		return nil, ErrNoPath
	}
	t.Best = best
	return t, nil
}

// Savings returns how many distinct cheats of at most maxCheat picoseconds
// save each positive number of picoseconds.
func (t *Track) Savings(maxCheat int) map[int]int {
	out := make(map[int]int)
	for a, da := range t.fromStart {
		for dr := -maxCheat; dr <= maxCheat; dr++ {
			span := maxCheat - abs(dr)
			for dc := -span; dc <= span; dc++ {
				b := gridgraph.Point{Row: a.Row + dr, Col: a.Col + dc}
				db, ok := t.toEnd[b]
				if !ok {
					continue
				}
				if saved := t.Best - (da + abs(dr) + abs(dc) + db); saved > 0 {
					out[saved]++
				}
			}
		}
	}
	return out
}

// CountCheats returns the number of cheats of at most maxCheat picoseconds
// that save at least minSaving.
func (t *Track) CountCheats(maxCheat, minSaving int) int {
	n := 0
	for saved, count := range t.Savings(maxCheat) {
		if saved >= minSaving {
			n += count
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Solve counts the short and long cheats worth taking.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	t, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("day20: %w", err)
	}
	logger := logging.Get("day20")
	logger.Debug().Int("best", t.Best).Int("track", len(t.fromStart)).Msg("Track measured")

	c := cfg.Day20
	return puzzle.Answer{
		Part1: puzzle.Itoa(t.CountCheats(c.ShortCheat, c.MinSaving)),
		Part2: puzzle.Itoa(t.CountCheats(c.LongCheat, c.MinSaving)),
	}, nil
}
