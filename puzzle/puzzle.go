// SPDX-License-Identifier: MIT

// Package puzzle holds the solver registry shared by every day package and
// the command line: the Answer type, input loading and artefact output.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/advent2024/config"
)

var (
	// ErrUnknownDay is returned by Lookup for a day without a solver.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")

	// ErrBadDay indicates a day argument that is not 1..25.
	ErrBadDay = errors.New("puzzle: day must be 1..25")

	// ErrEmptyInput is returned by the input helpers for blank input.
	ErrEmptyInput = errors.New("puzzle: input is empty")

	// ErrInputNotFound indicates the puzzle input file does not exist.
	ErrInputNotFound = errors.New("puzzle: input file not found")
)

// SolveFunc computes both answers of one day from the raw input text.
type SolveFunc func(input string, cfg config.Config) (Answer, error)

// Solver describes one day.
type Solver struct {
	Day   int
	Title string
	// Notes is a short Markdown description shown by "advent describe".
	Notes string
	Solve SolveFunc
}

// Answer is the outcome of one run. Part2 is empty for days with a single part.
type Answer struct {
	Part1 string
	Part2 string
	// Artifacts maps a file name to debug output written when a debug
	// directory is configured.
	Artifacts map[string]string
}

// Lines renders the answer the way it is printed: "part 1: X", "part 2: Y".
func (a Answer) Lines() []string {
	out := []string{"part 1: " + a.Part1}
	if a.Part2 != "" {
		out = append(out, "part 2: "+a.Part2)
	}
	return out
}

// AddArtifact records a named debug output, allocating the map on first use.
func (a *Answer) AddArtifact(name, body string) {
	if a.Artifacts == nil {
		a.Artifacts = make(map[string]string)
	}
	a.Artifacts[name] = body
}

// Itoa formats an integer answer.
func Itoa[T ~int | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

var (
	mu       sync.RWMutex
	registry = make(map[int]Solver)
)

// Register makes s available to Lookup. It panics on an invalid or
// duplicate day since registration happens from package init.
func Register(s Solver) {
	if s.Day < 1 || s.Day > 25 || s.Solve == nil {
		panic(fmt.Sprintf("puzzle: invalid solver for day %d", s.Day))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[s.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day))
	}
	registry[s.Day] = s
}

// Lookup returns the solver for day.
func Lookup(day int) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[day]
	if !ok {
		return Solver{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]int, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// ParseDay accepts "16", "day16" or "day 16".
func ParseDay(s string) (int, error) {
	t := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day"))
	d, err := strconv.Atoi(t)
	if err != nil || d < 1 || d > 25 {
		return 0, fmt.Errorf("%w: %q", ErrBadDay, s)
	}
	return d, nil
}
