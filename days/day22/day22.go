// SPDX-License-Identifier: MIT

// Package day22 solves monkey market: a pseudorandom secret sequence per
// buyer and the best four-change selling trigger.
package day22

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

const (
	prune = 1 << 24
	// span is the number of distinct price changes, -9..9.
	span = 19
	// keys is the number of four-change sequences.
	keys = span * span * span * span
)

// Solver registers day 22.
var Solver = puzzle.Solver{
	Day:   22,
	Title: "Monkey Market",
	Notes: `Each buyer's secret evolves by multiply, divide and mix-prune steps; the price is
the last digit of the secret.

* **Part 1:** sum of every buyer's 2000th secret.
* **Part 2:** most bananas from one sequence of four consecutive price changes,
  selling at its first occurrence per buyer.

The four changes are packed into a base-19 rolling key, so the totals live in
a flat array of 19⁴ slots instead of a map of tuples.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Next returns the secret following s.
func Next(s int64) int64 {
	s = (s ^ (s << 6)) % prune
	s = (s ^ (s >> 5)) % prune
	return (s ^ (s << 11)) % prune
}

// Evolve applies Next n times.
func Evolve(s int64, n int) int64 {
	for i := 0; i < n; i++ {
		s = Next(s)
	}
	return s
}

// Prices returns the n+1 prices seen from secret s: its own and n more.
func Prices(s int64, n int) []int {
	out := make([]int, 0, n+1)
	out = append(out, int(s%10))
	for i := 0; i < n; i++ {
		s = Next(s)
		out = append(out, int(s%10))
	}
	return out
}

// Market accumulates the bananas each change sequence would earn.
type Market struct {
	totals [keys]int
	seen   [keys]int
	buyers int
}

// Add records the first sale for every change sequence in prices.
func (m *Market) Add(prices []int) {
	m.buyers++
	key := 0
	for i := 1; i < len(prices); i++ {
		key = (key*span + prices[i] - prices[i-1] + 9) % keys
		if i < 4 || m.seen[key] == m.buyers {
			continue
		}
		m.seen[key] = m.buyers
		m.totals[key] += prices[i]
	}
}

// Bananas returns the total for the change sequence a, b, c, d.
func (m *Market) Bananas(a, b, c, d int) int {
	return m.totals[(((a+9)*span+b+9)*span+c+9)*span+d+9]
}

// Best returns the highest total over all sequences.
func (m *Market) Best() int {
	best := 0
	for _, v := range m.totals {
		if v > best {
			best = v
		}
	}
	return best
}

// Parse reads one initial secret per line.
func Parse(input string) ([]int64, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(lines))
	for i, ln := range lines {
		n, err := strconv.ParseInt(ln, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day22: line %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Solve sums the final secrets and finds the best trigger.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	secrets, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	rounds := cfg.Day22.Rounds
	var sum int64
	m := new(Market)
	for _, s := range secrets {
		sum += Evolve(s, rounds)
		m.Add(Prices(s, rounds))
	}
	return puzzle.Answer{Part1: puzzle.Itoa(sum), Part2: puzzle.Itoa(m.Best())}, nil
}
