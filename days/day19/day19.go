// SPDX-License-Identifier: MIT

// Package day19 solves linen layout: counting the ways a design splits into
// available towel patterns.
package day19

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrMalformed is returned when the towel list or the designs are missing.
var ErrMalformed = errors.New("day19: want towel list, blank line, designs")

// Solver registers day 19.
var Solver = puzzle.Solver{
	Day:   19,
	Title: "Linen Layout",
	Notes: `The first line lists towel stripe patterns; each following line is a design.

* **Part 1:** how many designs can be made from the towels.
* **Part 2:** the total number of towel arrangements over all designs.

A prefix table counts the arrangements: ` + "`ways[i]`" + ` sums ` + "`ways[i-len(t)]`" + ` for
every towel ` + "`t`" + ` that ends the first i stripes.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Onsen holds the towel patterns and the requested designs.
type Onsen struct {
	Towels  map[string]bool
	lengths []int
	Designs []string
}

// Parse reads the comma-separated towel line and the design lines.
func Parse(input string) (*Onsen, error) {
	blocks, err := puzzle.Blocks(input)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 2 {
		return nil, fmt.Errorf("%w: got %d blocks", ErrMalformed, len(blocks))
	}
	o := &Onsen{Towels: make(map[string]bool)}
	seen := make(map[int]bool)
	for _, t := range strings.Split(strings.Join(blocks[0], ","), ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		o.Towels[t] = true
		if !seen[len(t)] {
			seen[len(t)] = true
			o.lengths = append(o.lengths, len(t))
		}
	}
	if len(o.Towels) == 0 {
		return nil, fmt.Errorf("%w: no towels", ErrMalformed)
	}
	sort.Ints(o.lengths)
	o.Designs = blocks[1]
	return o, nil
}

// Arrangements returns the number of ways design splits into towels.
func (o *Onsen) Arrangements(design string) int64 {
	ways := make([]int64, len(design)+1)
	ways[0] = 1
	for i := 1; i <= len(design); i++ {
		for _, l := range o.lengths {
			if l > i {
				break
			}
			if ways[i-l] != 0 && o.Towels[design[i-l:i]] {
				ways[i] += ways[i-l]
			}
		}
	}
	return ways[len(design)]
}

// Solve counts the possible designs and their arrangements.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	o, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var possible, total int64
	for _, d := range o.Designs {
		n := o.Arrangements(d)
		if n > 0 {
			possible++
		}
		total += n
	}
	return puzzle.Answer{Part1: puzzle.Itoa(possible), Part2: puzzle.Itoa(total)}, nil
}
