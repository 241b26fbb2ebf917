// SPDX-License-Identifier: MIT

// Package day10 solves the hoof-it trail map: a directed graph of uphill
// steps, scored by reachable summits and rated by distinct trails.
package day10

import (
	"fmt"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/dfs"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Solver registers day 10.
var Solver = puzzle.Solver{
	Day:   10,
	Title: "Hoof It",
	Notes: `A topographic map of heights 0-9; a trail climbs exactly one per orthogonal step.

* **Part 1:** a trailhead's score is the number of 9s it can reach.
* **Part 2:** its rating is the number of distinct trails to any 9.

Each step becomes a directed edge, so the score is a reachability query and the rating a path count on a DAG.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// TrailMap is the uphill graph plus the trailheads and summits.
type TrailMap struct {
	Graph      *core.Graph
	Trailheads []string
	summits    map[string]bool
}

// Parse builds the trail graph. Cells that are not digits are impassable.
func Parse(input string) (*TrailMap, error) {
	grid, err := gridgraph.Parse(input)
	if err != nil {
		return nil, err
	}
	tm := &TrailMap{
		Graph:   core.NewGraph(core.WithDirected(true)),
		summits: make(map[string]bool),
	}
	height := func(p gridgraph.Point) int {
		r := grid.At(p)
		if r < '0' || r > '9' {
			return -1
		}
		return int(r - '0')
	}
	for _, p := range grid.Points() {
		h := height(p)
		if h < 0 {
			continue
		}
		id := gridgraph.VertexID(p)
		if err := tm.Graph.AddVertex(id); err != nil {
			return nil, err
		}
		switch h {
		case 0:
			tm.Trailheads = append(tm.Trailheads, id)
		case 9:
			tm.summits[id] = true
		}
		for _, q := range grid.Neighbors(p, gridgraph.Conn4) {
			if height(q) == h+1 {
				if _, err := tm.Graph.AddEdge(id, gridgraph.VertexID(q), 0); err != nil {
					return nil, err
				}
			}
		}
	}
	return tm, nil
}

// Score counts the summits reachable from trailhead.
func (tm *TrailMap) Score(trailhead string) (int, error) {
	seen, err := dfs.Reachable(tm.Graph, trailhead)
	if err != nil {
		return 0, err
	}
	n := 0
	for id := range seen {
		if tm.summits[id] {
			n++
		}
	}
	return n, nil
}

// Rating counts the distinct trails from trailhead to any summit.
func (tm *TrailMap) Rating(trailhead string) (int64, error) {
	return dfs.CountPaths(tm.Graph, trailhead, func(id string) bool { return tm.summits[id] })
}

// Solve sums scores and ratings over all trailheads.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	tm, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var score int
	var rating int64
	for _, th := range tm.Trailheads {
		s, err := tm.Score(th)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("day10: score %s: %w", th, err)
		}
		r, err := tm.Rating(th)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("day10: rating %s: %w", th, err)
		}
		score += s
		rating += r
	}
	return puzzle.Answer{Part1: puzzle.Itoa(score), Part2: puzzle.Itoa(rating)}, nil
}
