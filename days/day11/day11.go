// SPDX-License-Identifier: MIT

// Package day11 solves plutonian pebbles: stone counts after repeated blinks,
// tracked as a multiset so the order of stones never matters.
package day11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Solver registers day 11.
var Solver = puzzle.Solver{
	Day:   11,
	Title: "Plutonian Pebbles",
	Notes: `On each blink every stone changes at once:

1. ` + "`0`" + ` becomes ` + "`1`" + `;
2. an even number of digits splits into its left and right halves;
3. anything else is multiplied by 2024.

* **Part 1:** stones after 25 blinks. **Part 2:** after 75.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Parse reads whitespace-separated stone numbers.
func Parse(input string) ([]int64, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	stones := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day11: stone %q: %w", f, err)
		}
		stones[i] = n
	}
	return stones, nil
}

// Blink applies the rules to one stone.
func Blink(stone int64) []int64 {
	if stone == 0 {
		return []int64{1}
	}
	s := strconv.FormatInt(stone, 10)
	if len(s)%2 == 0 {
		left, _ := strconv.ParseInt(s[:len(s)/2], 10, 64)
		right, _ := strconv.ParseInt(s[len(s)/2:], 10, 64)
		return []int64{left, right}
	}
	return []int64{stone * 2024}
}

// CountAfter returns the number of stones after blinks rounds.
func CountAfter(stones []int64, blinks int) int64 {
	counts := make(map[int64]int64, len(stones))
	for _, s := range stones {
		counts[s]++
	}
	for i := 0; i < blinks; i++ {
		next := make(map[int64]int64, len(counts)*2)
		for st, n := range counts {
			for _, u := range Blink(st) {
				next[u] += n
			}
		}
		counts = next
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}

// Solve counts stones after the configured number of blinks.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	stones, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: puzzle.Itoa(CountAfter(stones, cfg.Day11.Blinks1)),
		Part2: puzzle.Itoa(CountAfter(stones, cfg.Day11.Blinks2)),
	}, nil
}
