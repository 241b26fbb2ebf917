// SPDX-License-Identifier: MIT

// Package day14 solves restroom redoubt: robots wrapping around a torus,
// scored by quadrant counts.
package day14

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
	"github.com/katalvlaran/advent2024/logging"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrMalformed is returned for robot lines that do not hold four integers.
var ErrMalformed = errors.New("day14: malformed robot")

// TreeFrameArtifact is the debug file holding the part 2 frame.
const TreeFrameArtifact = "day14_tree_frame.txt"

// Solver registers day 14.
var Solver = puzzle.Solver{
	Day:   14,
	Title: "Restroom Redoubt",
	Notes: `Robots move with constant velocity on a 101×103 floor that wraps at the edges.

* **Part 1:** after 100 seconds, multiply the robot counts of the four quadrants
  (robots on the middle row or column do not count).
* **Part 2:** the first second at which the robots draw a Christmas tree.

The tree clusters most robots into one quadrant, which gives the lowest
safety factor in a full period of width × height seconds. The frame is
written as ` + "`day14_tree_frame.txt`" + ` when a debug directory is set.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Robot is a position (X column, Y row) and a velocity per second.
type Robot struct {
	PX, PY, VX, VY int
}

var numberRE = regexp.MustCompile(`-?\d+`)

// Parse reads "p=x,y v=dx,dy" lines.
func Parse(input string) ([]Robot, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, err
	}
	robots := make([]Robot, 0, len(lines))
	for i, ln := range lines {
		fields := numberRE.FindAllString(ln, -1)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformed, i+1, ln)
		}
		var n [4]int
		for k, f := range fields {
			if n[k], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("%w at line %d: %q: %v", ErrMalformed, i+1, ln, err)
			}
		}
		robots = append(robots, Robot{n[0], n[1], n[2], n[3]})
	}
	return robots, nil
}

// Floor is the torus the robots move on.
type Floor struct {
	Width, Height int
}

func wrap(v, m int) int {
	return ((v % m) + m) % m
}

// At returns the position of r after t seconds.
func (f Floor) At(r Robot, t int) (x, y int) {
	return wrap(r.PX+r.VX*t, f.Width), wrap(r.PY+r.VY*t, f.Height)
}

// SafetyFactor multiplies the quadrant counts of the robots after t seconds.
func (f Floor) SafetyFactor(robots []Robot, t int) int {
	midX, midY := f.Width/2, f.Height/2
	var quads [4]int
	for _, r := range robots {
		x, y := f.At(r, t)
		if x == midX || y == midY {
			continue
		}
		q := 0
		if x > midX {
			q++
		}
		if y > midY {
			q += 2
		}
		quads[q]++
	}
	return quads[0] * quads[1] * quads[2] * quads[3]
}

// QuietestSecond returns the second in 1..Width×Height with the lowest
// safety factor; the earliest wins ties. Positions repeat after that period.
func (f Floor) QuietestSecond(robots []Robot) int {
	best, bestT := -1, 0
	for t := 1; t <= f.Width*f.Height; t++ {
		if s := f.SafetyFactor(robots, t); best < 0 || s < best {
			best, bestT = s, t
		}
	}
	return bestT
}

// Frame draws the robots after t seconds, '#' for occupied cells.
func (f Floor) Frame(robots []Robot, t int) string {
	g := gridgraph.New(f.Width, f.Height, '.')
	for _, r := range robots {
		x, y := f.At(r, t)
		g.Set(gridgraph.Point{Row: y, Col: x}, '#')
	}
	return g.String()
}

// Solve scores the configured second and searches for the tree.
func Solve(input string, cfg config.Config) (puzzle.Answer, error) {
	robots, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	f := Floor{Width: cfg.Day14.Width, Height: cfg.Day14.Height}
	tree := f.QuietestSecond(robots)
	logger := logging.Get("day14")
	logger.Debug().Int("second", tree).Msg("Lowest safety factor")

	ans := puzzle.Answer{
		Part1: puzzle.Itoa(f.SafetyFactor(robots, cfg.Day14.Seconds)),
		Part2: puzzle.Itoa(tree),
	}
	ans.AddArtifact(TreeFrameArtifact, f.Frame(robots, tree))
	return ans, nil
}
