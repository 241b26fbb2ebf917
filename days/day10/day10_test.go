// SPDX-License-Identifier: MIT

package day10

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
)

const example = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

func TestSolve_Example(t *testing.T) {
	ans, err := Solve(example, config.Default())
	require.NoError(t, err)
	require.Equal(t, "36", ans.Part1)
	require.Equal(t, "81", ans.Part2)
}

func TestTrailheads(t *testing.T) {
	tm, err := Parse(example)
	require.NoError(t, err)
	require.Len(t, tm.Trailheads, 9)

	score, err := tm.Score("0,2")
	require.NoError(t, err)
	require.Equal(t, 5, score)
}

func TestImpassableCells(t *testing.T) {
	// A single trail branching into a diamond; '.' cells are walls.
	tm, err := Parse("...0...\n...1...\n...2...\n6543456\n7.....7\n8.....8\n9.....9\n")
	require.NoError(t, err)

	score, err := tm.Score("0,3")
	require.NoError(t, err)
	require.Equal(t, 2, score)

	rating, err := tm.Rating("0,3")
	require.NoError(t, err)
	require.Equal(t, int64(2), rating)
}
