// SPDX-License-Identifier: MIT

package day14

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
)

const example = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
`

func TestSafetyFactor_Example(t *testing.T) {
	robots, err := Parse(example)
	require.NoError(t, err)
	f := Floor{Width: 11, Height: 7}
	require.Equal(t, 12, f.SafetyFactor(robots, 100))
}

func TestFloor_Wraps(t *testing.T) {
	f := Floor{Width: 11, Height: 7}
	r := Robot{PX: 2, PY: 4, VX: 2, VY: -3}
	for sec, want := range [][2]int{{2, 4}, {4, 1}, {6, 5}, {8, 2}, {10, 6}, {1, 3}} {
		x, y := f.At(r, sec)
		require.Equal(t, want, [2]int{x, y}, "second %d", sec)
	}
}

func TestSolve_ConfiguredFloor(t *testing.T) {
	cfg, err := config.New(map[string]interface{}{"day14.width": 11, "day14.height": 7})
	require.NoError(t, err)
	ans, err := Solve(example, cfg)
	require.NoError(t, err)
	require.Equal(t, "12", ans.Part1)

	frame := ans.Artifacts[TreeFrameArtifact]
	require.Len(t, strings.Split(strings.TrimSuffix(frame, "\n"), "\n"), 7)
}

// Two robots slide into the top-left quadrant after one second, emptying two quadrants.
func TestQuietestSecond(t *testing.T) {
	f := Floor{Width: 5, Height: 5}
	robots := []Robot{
		{PX: 0, PY: 0, VX: 0, VY: 0},
		{PX: 4, PY: 0, VX: 1, VY: 0},
		{PX: 0, PY: 4, VX: 0, VY: 1},
		{PX: 4, PY: 4, VX: 0, VY: 0},
	}
	require.Equal(t, 1, f.QuietestSecond(robots))
	require.Zero(t, f.SafetyFactor(robots, 1))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("p=1,2 v=3\n")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Parse("p=0,4 v=3,-3\np=99999999999999999999,0 v=1,1\n")
	require.ErrorIs(t, err, ErrMalformed)
	require.ErrorContains(t, err, "line 2")
}
