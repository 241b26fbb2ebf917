// SPDX-License-Identifier: MIT

// Package samples embeds the official puzzle samples and checks solvers
// against their published answers.
package samples

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

//go:embed samples.yaml
var catalogue []byte

// ErrMismatch is returned by Check when an answer differs from the expected one.
var ErrMismatch = errors.New("samples: answer mismatch")

// Sample is one catalogue entry. Empty Part1/Part2 are not checked.
type Sample struct {
	Day    int                    `yaml:"day"`
	Name   string                 `yaml:"name"`
	Input  string                 `yaml:"input"`
	Part1  string                 `yaml:"part1"`
	Part2  string                 `yaml:"part2"`
	Config map[string]interface{} `yaml:"config"`
}

// String names the sample as "day N/name".
func (s Sample) String() string {
	return fmt.Sprintf("day %d/%s", s.Day, s.Name)
}

var (
	loadOnce sync.Once
	loaded   []Sample
	loadErr  error
)

// Parse decodes a YAML catalogue, ordered by day and then file order.
func Parse(data []byte) ([]Sample, error) {
	var out []Sample
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("samples: decode catalogue: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

// All returns every embedded sample.
func All() ([]Sample, error) {
	loadOnce.Do(func() { loaded, loadErr = Parse(catalogue) })
	return loaded, loadErr
}

// ForDay returns the embedded samples of one day.
func ForDay(day int) ([]Sample, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, s := range all {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}

// Check solves s with solver under the defaults plus the sample's overrides
// and compares the non-empty expected answers.
func Check(solver puzzle.Solver, s Sample) (puzzle.Answer, error) {
	cfg, err := config.New(s.Config)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("%s: %w", s, err)
	}
	ans, err := puzzle.Run(solver, s.Input, cfg)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("%s: %w", s, err)
	}
	if s.Part1 != "" && ans.Part1 != s.Part1 {
		return ans, fmt.Errorf("%w: %s part 1: got %q, want %q", ErrMismatch, s, ans.Part1, s.Part1)
	}
	if s.Part2 != "" && ans.Part2 != s.Part2 {
		return ans, fmt.Errorf("%w: %s part 2: got %q, want %q", ErrMismatch, s, ans.Part2, s.Part2)
	}
	return ans, nil
}
