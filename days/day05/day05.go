// SPDX-License-Identifier: MIT

// Package day05 solves the print queue: page ordering rules form a directed
// graph and every update is checked against, or sorted by, the rules that
// mention only its own pages.
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/dfs"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrMalformed is returned for lines that are neither a rule nor an update.
var ErrMalformed = errors.New("day05: malformed line")

// Solver registers day 5.
var Solver = puzzle.Solver{
	Day:   5,
	Title: "Print Queue",
	Notes: `Rules ` + "`X|Y`" + ` say page X must be printed before page Y.

* **Part 1:** sum the middle page of every update that already obeys the rules.
* **Part 2:** reorder the other updates and sum their middle pages.

Rules restricted to one update are sorted topologically.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Queue holds the rule graph and the updates to audit.
type Queue struct {
	Rules   *core.Graph
	Updates [][]string
	numbers map[string]int
}

// Parse reads "a|b" rule lines and "a,b,c" update lines in any order.
func Parse(input string) (*Queue, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, err
	}
	q := &Queue{
		Rules:   core.NewGraph(core.WithDirected(true)),
		numbers: make(map[string]int),
	}
	for i, ln := range lines {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.Contains(ln, "|"):
			a, b, _ := strings.Cut(ln, "|")
			if !q.page(a) || !q.page(b) {
				return nil, fmt.Errorf("%w %d: %q", ErrMalformed, i+1, ln)
			}
			if _, err := q.Rules.AddEdge(a, b, 0); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, fmt.Errorf("day05: rule %q: %w", ln, err)
			}
		case strings.Contains(ln, ","):
			pages := strings.Split(ln, ",")
			for _, p := range pages {
				if !q.page(p) {
					return nil, fmt.Errorf("%w %d: %q", ErrMalformed, i+1, ln)
				}
			}
			q.Updates = append(q.Updates, pages)
		default:
			if !q.page(ln) {
				return nil, fmt.Errorf("%w %d: %q", ErrMalformed, i+1, ln)
			}
			q.Updates = append(q.Updates, []string{ln})
		}
	}
	return q, nil
}

// page records the number of page s and reports whether s is numeric.
func (q *Queue) page(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	q.numbers[s] = n
	return true
}

// InOrder reports whether no later page of update must precede an earlier one.
func (q *Queue) InOrder(update []string) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if q.Rules.HasEdge(update[j], update[i]) {
				return false
			}
		}
	}
	return true
}

// Reorder returns update sorted by the rules among its own pages.
func (q *Queue) Reorder(update []string) ([]string, error) {
	keep := make(map[string]bool, len(update))
	for _, p := range update {
		keep[p] = true
	}
	sub := core.InducedSubgraph(q.Rules, keep)
	for _, p := range update {
		if err := sub.AddVertex(p); err != nil {
			return nil, err
		}
	}
	return dfs.TopologicalSort(sub)
}

// middle returns the number of the centre page.
func (q *Queue) middle(pages []string) int {
	return q.numbers[pages[len(pages)/2]]
}

// Solve sums middle pages of ordered updates, then of reordered ones.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	q, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ordered, fixed int
	for _, u := range q.Updates {
		if q.InOrder(u) {
			ordered += q.middle(u)
			continue
		}
		sorted, err := q.Reorder(u)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("day05: update %v: %w", u, err)
		}
		fixed += q.middle(sorted)
	}
	return puzzle.Answer{Part1: puzzle.Itoa(ordered), Part2: puzzle.Itoa(fixed)}, nil
}
