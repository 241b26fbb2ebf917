// SPDX-License-Identifier: MIT

// Package day16 solves the reindeer maze: Dijkstra over (tile, heading)
// states, then a backwards run to find every tile on some best path.
package day16

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/dijkstra"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/logging"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Move costs.
const (
	StepCost = 1
	TurnCost = 1000
)

// BestTilesArtifact is the debug file with best-path tiles marked 'O'.
const BestTilesArtifact = "day16_best_tiles.txt"

// sink joins every end state so one Dijkstra run covers all headings.
const sink = "end"

var (
	// ErrMissingMarker is returned when S or E is absent.
	ErrMissingMarker = errors.New("day16: maze needs one S and one E")
	// ErrNoPath is returned when E cannot be reached from S.
	ErrNoPath = errors.New("day16: end is unreachable")
)

// Solver registers day 16.
var Solver = puzzle.Solver{
	Day:   16,
	Title: "Reindeer Maze",
	Notes: `The reindeer starts on ` + "`S`" + ` facing east. A step forward costs 1 and a 90° turn costs 1000.

* **Part 1:** lowest score from S to E.
* **Part 2:** number of tiles that lie on at least one lowest-score path.

States (tile, heading) are vertices of a weighted directed graph. A tile state lies
on a best path exactly when its distance from S plus its distance to E,
found by Dijkstra on the reversed graph, equals the best score.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Maze is the parsed map with its state graph.
type Maze struct {
	Grid       *gridgraph.Grid
	Start, End gridgraph.Point
	States     *core.Graph
}

func stateID(p gridgraph.Point, d gridgraph.Dir) string {
	return gridgraph.VertexID(p) + "," + d.String()
}

// Parse reads the maze and builds the state graph.
func Parse(input string) (*Maze, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, err
	}
	start, okS := g.Find('S')
	end, okE := g.Find('E')
	if !okS || !okE {
		return nil, ErrMissingMarker
	}
	m := &Maze{Grid: g, Start: start, End: end, States: core.NewGraph(core.WithDirected(true), core.WithWeighted())}

	for _, p := range g.Points() {
		if g.At(p) == '#' {
			continue
		}
		for _, d := range gridgraph.Dirs4 {
			from := stateID(p, d)
			edges := []struct {
				to string
				w  int64
			}{
				{stateID(p, d.TurnLeft()), TurnCost},
				{stateID(p, d.TurnRight()), TurnCost},
			}
			if q := p.Move(d); g.InBounds(q) && g.At(q) != '#' {
				edges = append(edges, struct {
					to string
					w  int64
				}{stateID(q, d), StepCost})
			}
			for _, e := range edges {
				if _, err := m.States.AddEdge(from, e.to, e.w); err != nil {
					return nil, err
				}
			}
			if p == end {
				if _, err := m.States.AddEdge(from, sink, 0); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// BestScore returns the lowest score and the distance of every state from S.
func (m *Maze) BestScore() (int64, map[string]int64, error) {
	dist, _, err := dijkstra.Dijkstra(m.States, dijkstra.Source(stateID(m.Start, gridgraph.East)))
	if err != nil {
		return 0, nil, err
	}
	best := dist[sink]
	if best == dijkstra.Unreachable {
		return 0, nil, ErrNoPath
	}
	return best, dist, nil
}

// BestTiles returns every tile on at least one lowest-score path.
func (m *Maze) BestTiles() (int64, map[gridgraph.Point]bool, error) {
	best, fromStart, err := m.BestScore()
	if err != nil {
		return 0, nil, err
	}
	toEnd, _, err := dijkstra.Dijkstra(core.Reverse(m.States), dijkstra.Source(sink))
	if err != nil {
		return 0, nil, err
	}

	tiles := make(map[gridgraph.Point]bool)
	for _, p := range m.Grid.Points() {
		if m.Grid.At(p) == '#' {
			continue
		}
		for _, d := range gridgraph.Dirs4 {
			id := stateID(p, d)
			a, b := fromStart[id], toEnd[id]
			if a != dijkstra.Unreachable && b != dijkstra.Unreachable && a+b == best {
				tiles[p] = true
				break
			}
		}
	}
	return best, tiles, nil
}

// Solve scores the maze and counts the best-path tiles.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	logger := logging.Get("day16")
	logger.Debug().Int("states", m.States.VertexCount()).Int("edges", m.States.EdgeCount()).Msg("State graph built")

	best, tiles, err := m.BestTiles()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("day16: %w", err)
	}

	marked := m.Grid.Clone()
	for p := range tiles {
		marked.Set(p, 'O')
	}
	ans := puzzle.Answer{Part1: puzzle.Itoa(best), Part2: puzzle.Itoa(len(tiles))}
	ans.AddArtifact(BestTilesArtifact, marked.String())
	return ans, nil
}
