// SPDX-License-Identifier: MIT

// Package day18 solves RAM run: shortest walks across a memory grid that
// fills with corrupted bytes.
package day18

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2024/bfs"
	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/logging"
	"github.com/katalvlaran/advent2024/puzzle"
)

// PathArtifact is the debug file showing the part 1 path.
const PathArtifact = "day18_path.txt"

var (
	// ErrMalformed is returned for byte lines that are not "x,y".
	ErrMalformed = errors.New("day18: malformed byte position")
	// ErrOutOfRange is returned for a byte outside the memory space.
	ErrOutOfRange = errors.New("day18: byte outside memory space")
	// ErrNoPath is returned when the exit is already unreachable in part 1.
	ErrNoPath = errors.New("day18: exit unreachable")
	// ErrNotBlocked is returned when every byte falls and the exit stays reachable.
	ErrNotBlocked = errors.New("day18: exit never blocked")
)

// Solver registers day 18.
var Solver = puzzle.Solver{
	Day:   18,
	Title: "RAM Run",
	Notes: `Bytes fall onto a 71×71 memory grid at the listed x,y positions and corrupt those cells.
You walk from the top-left to the bottom-right corner.

* **Part 1:** fewest steps to the exit after the first 1024 bytes.
* **Part 2:** the first byte that cuts the exit off, as ` + "`x,y`" + `.

Part 2 drops bytes one at a time and reruns the breadth-first search only when
a byte lands on the current shortest path. Size and byte count come from the
` + "`day18`" + ` config section.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Space is the square memory grid and the ordered falling bytes.
type Space struct {
	Size  int
	Bytes []gridgraph.Point
	graph *core.Graph
}

// Parse reads "x,y" lines. X is the column and Y the row.
func Parse(input string, size int) (*Space, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, err
	}
	s := &Space{Size: size, Bytes: make([]gridgraph.Point, 0, len(lines))}
	for i, ln := range lines {
		xs, ys, ok := strings.Cut(ln, ",")
		if !ok {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformed, i+1, ln)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformed, i+1, ln)
		}
		p := gridgraph.Point{Row: y, Col: x}
		if x < 0 || y < 0 || x >= size || y >= size {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, ln)
		}
		s.Bytes = append(s.Bytes, p)
	}

	// The graph holds every cell; corrupted cells are filtered per search.
	s.graph, err = gridgraph.New(size, size, '.').ToCoreGraph(func(rune) bool { return true })
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Space) start() string { return gridgraph.VertexID(gridgraph.Point{}) }

func (s *Space) exit() string {
	return gridgraph.VertexID(gridgraph.Point{Row: s.Size - 1, Col: s.Size - 1})
}

// ShortestPath returns the vertex path from the start to the exit avoiding
// blocked cells, or nil when none exists.
func (s *Space) ShortestPath(blocked map[string]bool) ([]string, error) {
	if blocked[s.start()] || blocked[s.exit()] {
		return nil, nil
	}
	res, err := bfs.BFS(s.graph, s.start(),
		bfs.WithStopAt(s.exit()),
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return !blocked[nbr] }),
	)
	if err != nil {
		return nil, err
	}
	if !res.Reached(s.exit()) {
		return nil, nil
	}
	return res.PathTo(s.exit())
}

// Blocked returns the set of cells corrupted by the first n bytes.
func (s *Space) Blocked(n int) map[string]bool {
	if n > len(s.Bytes) {
		n = len(s.Bytes)
	}
	out := make(map[string]bool, n)
	for _, p := range s.Bytes[:n] {
		out[gridgraph.VertexID(p)] = true
	}
	return out
}

// FirstBlocker returns the first byte after the first skip bytes that leaves
// no path to the exit.
func (s *Space) FirstBlocker(skip int) (gridgraph.Point, error) {
	blocked := s.Blocked(skip)
	path, err := s.ShortestPath(blocked)
	if err != nil {
		return gridgraph.Point{}, err
	}
	onPath := toSet(path)
	if skip > len(s.Bytes) {
		skip = len(s.Bytes)
	}
	for _, b := range s.Bytes[skip:] {
		id := gridgraph.VertexID(b)
		blocked[id] = true
		if path != nil && !onPath[id] {
			continue
		}
		if path, err = s.ShortestPath(blocked); err != nil {
			return gridgraph.Point{}, err
		}
		if path == nil {
			return b, nil
		}
		onPath = toSet(path)
	}
	return gridgraph.Point{}, ErrNotBlocked
}

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// Render draws the space with the first n bytes as '#' and path as 'O'.
func (s *Space) Render(n int, path []string) string {
	g := gridgraph.New(s.Size, s.Size, '.')
	for id := range s.Blocked(n) {
		p, _ := gridgraph.ParseVertexID(id)
		g.Set(p, '#')
	}
	for _, id := range path {
		p, _ := gridgraph.ParseVertexID(id)
		g.Set(p, 'O')
	}
	return g.String()
}

// Solve walks the space after the configured bytes and finds the blocker.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	s, err := Parse(input, cfg.Day18.Size)
	if err != nil {
		return puzzle.Answer{}, err
	}
	log := logging.Get("day18")

	path, err := s.ShortestPath(s.Blocked(cfg.Day18.Fallen))
	if err != nil {
		return puzzle.Answer{}, err
	}
	if path == nil {
		return puzzle.Answer{}, fmt.Errorf("%w after %d bytes", ErrNoPath, cfg.Day18.Fallen)
	}
	log.Debug().Int("steps", len(path)-1).Int("fallen", cfg.Day18.Fallen).Msg("Exit found")

	b, err := s.FirstBlocker(cfg.Day18.Fallen)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{
		Part1: puzzle.Itoa(len(path) - 1),
		Part2: fmt.Sprintf("%d,%d", b.Col, b.Row),
	}
	ans.AddArtifact(PathArtifact, s.Render(cfg.Day18.Fallen, path))
	return ans, nil
}
