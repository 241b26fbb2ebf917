// SPDX-License-Identifier: MIT

// Package day21 solves keypad conundrum: the shortest button sequence a
// human must press through a chain of robot-operated keypads.
package day21

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2024/bfs"
	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Keypad layouts; '#' marks the gap no arm may cross.
const (
	NumericLayout = "789\n456\n123\n#0A\n"
	DirLayout     = "#^A\n<v>\n"
)

// ErrBadCode is returned for a code holding a key the numeric keypad lacks.
var ErrBadCode = errors.New("day21: code has no numeric part or unknown key")

// Solver registers day 21.
var Solver = puzzle.Solver{
	Day:   21,
	Title: "Keypad Conundrum",
	Notes: `A code is typed on a numeric keypad by a robot, which is driven from a directional
keypad by another robot, and so on up to the human.

* **Part 1:** sum of complexities (sequence length × numeric part) with 2 robot keypads in between.
* **Part 2:** the same with 25.

Every shortest arm path between two keys comes from a breadth-first search over
the keypad graph. The cost of typing a sequence at a given level is memoised,
so the chain length only adds a factor, not an exponent.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Keypad is a key layout with every shortest move sequence between keys.
type Keypad struct {
	Keys  map[rune]gridgraph.Point
	moves map[[2]rune][]string
}

// NewKeypad builds a keypad from its layout.
func NewKeypad(layout string) (*Keypad, error) {
	grid, err := gridgraph.Parse(layout)
	if err != nil {
		return nil, err
	}
	g, err := grid.ToCoreGraph(func(r rune) bool { return r != '#' })
	if err != nil {
		return nil, err
	}
	k := &Keypad{Keys: make(map[rune]gridgraph.Point), moves: make(map[[2]rune][]string)}
	for _, p := range grid.Points() {
		if r := grid.At(p); r != '#' {
			k.Keys[r] = p
		}
	}
	for src, sp := range k.Keys {
		res, err := bfs.BFS(g, gridgraph.VertexID(sp))
		if err != nil {
			return nil, err
		}
		for dst, dp := range k.Keys {
			paths, err := shortestMoves(g, res.Depth, sp, dp)
			if err != nil {
				return nil, err
			}
			k.moves[[2]rune{src, dst}] = paths
		}
	}
	return k, nil
}

// shortestMoves walks back from dst along decreasing BFS depth and returns
// every shortest move string from src.
func shortestMoves(g *core.Graph, depth map[string]int, src, dst gridgraph.Point) ([]string, error) {
	if dst == src {
		return []string{""}, nil
	}
	id := gridgraph.VertexID(dst)
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, n := range nbrs {
		if depth[n] != depth[id]-1 {
			continue
		}
		prev, err := gridgraph.ParseVertexID(n)
		if err != nil {
			return nil, err
		}
		heads, err := shortestMoves(g, depth, src, prev)
		if err != nil {
			return nil, err
		}
		step := glyph(dst.Sub(prev))
		for _, h := range heads {
			out = append(out, h+step)
		}
	}
	return out, nil
}

func glyph(delta gridgraph.Point) string {
	for _, d := range gridgraph.Dirs4 {
		if d.Delta() == delta {
			return d.String()
		}
	}
	return ""
}

// Moves returns every shortest move sequence from key a to key b.
func (k *Keypad) Moves(a, b rune) []string {
	return k.moves[[2]rune{a, b}]
}

// Chain is a numeric keypad behind a number of robot directional keypads.
type Chain struct {
	numeric, dir *Keypad
	robots       int
	memo         map[memoKey]int64
}

type memoKey struct {
	seq   string
	level int
}

// NewChain returns a chain with robots directional keypads between the
// human and the numeric keypad.
func NewChain(numeric, dir *Keypad, robots int) *Chain {
	return &Chain{numeric: numeric, dir: dir, robots: robots, memo: make(map[memoKey]int64)}
}

// Presses returns the number of human button presses needed to type code on
// the numeric keypad.
func (c *Chain) Presses(code string) (int64, error) {
	for _, r := range code {
		if _, ok := c.numeric.Keys[r]; !ok {
			return 0, fmt.Errorf("%w: %q", ErrBadCode, code)
		}
	}
	return c.typed(code, 0), nil
}

// typed is the cost of typing seq on the keypad at level; level 0 is the
// numeric keypad and level robots+1 is the human.
func (c *Chain) typed(seq string, level int) int64 {
	if level > c.robots {
		return int64(len(seq))
	}
	key := memoKey{seq, level}
	if v, ok := c.memo[key]; ok {
		return v
	}
	pad := c.dir
	if level == 0 {
		pad = c.numeric
	}
	var total int64
	from := 'A'
	for _, to := range seq {
		best := int64(-1)
		for _, m := range pad.Moves(from, to) {
			if n := c.typed(m+"A", level+1); best < 0 || n < best {
				best = n
			}
		}
		total += best
		from = to
	}
	c.memo[key] = total
	return total
}

// Complexity is the press count times the numeric part of code.
func (c *Chain) Complexity(code string) (int64, error) {
	n, err := numericPart(code)
	if err != nil {
		return 0, err
	}
	presses, err := c.Presses(code)
	if err != nil {
		return 0, err
	}
	return presses * n, nil
}

func numericPart(code string) (int64, error) {
	digits := strings.TrimFunc(code, func(r rune) bool { return r < '0' || r > '9' })
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCode, code)
	}
	return n, nil
}

// Solve sums the code complexities for both chain lengths.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	codes, err := puzzle.Lines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	numeric, err := NewKeypad(NumericLayout)
	if err != nil {
		return puzzle.Answer{}, err
	}
	dir, err := NewKeypad(DirLayout)
	if err != nil {
		return puzzle.Answer{}, err
	}

	sum := func(robots int) (int64, error) {
		c := NewChain(numeric, dir, robots)
		var total int64
		for _, code := range codes {
			v, err := c.Complexity(code)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	}
	p1, err := sum(cfg.Day21.Robots1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := sum(cfg.Day21.Robots2)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: puzzle.Itoa(p1), Part2: puzzle.Itoa(p2)}, nil
}
