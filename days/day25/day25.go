// SPDX-License-Identifier: MIT

// Package day25 solves code chronicle: matching lock and key schematics.
package day25

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrMalformed is returned for a schematic that is neither a lock nor a key
// or whose size differs from the others.
var ErrMalformed = errors.New("day25: malformed schematic")

// Solver registers day 25.
var Solver = puzzle.Solver{
	Day:   25,
	Title: "Code Chronicle",
	Notes: `Locks have a filled top row and pins hanging down; keys have a filled bottom row
and teeth pointing up.

* **Part 1:** how many lock/key pairs fit without overlapping in any column.

There is no second part.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Heights lists the filled cells per column, excluding the base row.
type Heights []int

// Schematics holds the parsed locks and keys and the usable column space.
type Schematics struct {
	Locks, Keys []Heights
	Space       int
}

// Parse reads blank-line separated schematics.
func Parse(input string) (*Schematics, error) {
	blocks, err := puzzle.Blocks(input)
	if err != nil {
		return nil, err
	}
	s := &Schematics{}
	width := -1
	for i, b := range blocks {
		g, err := gridgraph.FromLines(b)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrMalformed, i+1, err)
		}
		if width >= 0 && (g.Width != width || g.Height != s.Space+2) {
			return nil, fmt.Errorf("%w %d: size %dx%d", ErrMalformed, i+1, g.Width, g.Height)
		}
		width, s.Space = g.Width, g.Height-2

		top, bottom := b[0], b[len(b)-1]
		full := strings.Repeat("#", g.Width)
		heights := make(Heights, g.Width)
		for _, p := range g.FindAll('#') {
			heights[p.Col]++
		}
		for c := range heights {
			heights[c]--
		}
		switch {
		case top == full && !strings.Contains(bottom, "#"):
			s.Locks = append(s.Locks, heights)
		case bottom == full && !strings.Contains(top, "#"):
			s.Keys = append(s.Keys, heights)
		default:
			return nil, fmt.Errorf("%w %d: neither lock nor key", ErrMalformed, i+1)
		}
	}
	return s, nil
}

// Fits reports whether key and lock overlap in no column.
func (s *Schematics) Fits(lock, key Heights) bool {
	for i := range lock {
		if lock[i]+key[i] > s.Space {
			return false
		}
	}
	return true
}

// Pairs counts the fitting lock/key pairs.
func (s *Schematics) Pairs() int {
	n := 0
	for _, l := range s.Locks {
		for _, k := range s.Keys {
			if s.Fits(l, k) {
				n++
			}
		}
	}
	return n
}

// Solve counts the fitting pairs.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: puzzle.Itoa(s.Pairs())}, nil
}
