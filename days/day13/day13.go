// SPDX-License-Identifier: MIT

// Package day13 solves claw contraption: each machine is a 2×2 integer
// linear system solved exactly with Cramer's rule.
package day13

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrMalformed is returned for machine blocks that do not hold six numbers.
var ErrMalformed = errors.New("day13: malformed machine")

// Token costs of the two buttons.
const (
	CostA = 3
	CostB = 1
)

// Solver registers day 13.
var Solver = puzzle.Solver{
	Day:   13,
	Title: "Claw Contraption",
	Notes: `Button A moves the claw by (ax, ay) for 3 tokens, B by (bx, by) for 1 token.

* **Part 1:** fewest tokens to reach every reachable prize.
* **Part 2:** the same with 10000000000000 added to both prize coordinates.

With two independent vectors the press counts are unique, so Cramer's rule
gives them directly; only non-negative integral solutions count.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Machine is one claw machine.
type Machine struct {
	AX, AY, BX, BY int64
	PX, PY         int64
}

var numberRE = regexp.MustCompile(`-?\d+`)

// Parse reads blank-line separated machine blocks.
func Parse(input string) ([]Machine, error) {
	blocks, err := puzzle.Blocks(input)
	if err != nil {
		return nil, err
	}
	out := make([]Machine, 0, len(blocks))
	for i, b := range blocks {
		var nums []int64
		for _, ln := range b {
			for _, s := range numberRE.FindAllString(ln, -1) {
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w %d: %v", ErrMalformed, i+1, err)
				}
				nums = append(nums, n)
			}
		}
		if len(nums) != 6 {
			return nil, fmt.Errorf("%w %d: want 6 numbers, got %d", ErrMalformed, i+1, len(nums))
		}
		out = append(out, Machine{nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]})
	}
	return out, nil
}

// Tokens returns the cost of winning m with the prize shifted by offset, or 0
// when the prize cannot be reached with non-negative whole presses.
// Parallel button vectors are treated as unwinnable.
func (m Machine) Tokens(offset int64) int64 {
	px, py := m.PX+offset, m.PY+offset
	det := m.AX*m.BY - m.AY*m.BX
	if det == 0 {
		return 0
	}
	an := px*m.BY - py*m.BX
	bn := m.AX*py - m.AY*px
	if an%det != 0 || bn%det != 0 {
		return 0
	}
	a, b := an/det, bn/det
	if a < 0 || b < 0 {
		return 0
	}
	return CostA*a + CostB*b
}

// Solve sums the token costs without and with the configured offset.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	machines, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var near, far int64
	for _, m := range machines {
		near += m.Tokens(0)
		far += m.Tokens(cfg.Day13.Offset)
	}
	return puzzle.Answer{Part1: puzzle.Itoa(near), Part2: puzzle.Itoa(far)}, nil
}
