// SPDX-License-Identifier: MIT

package day04

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
)

const example = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

const crosses = `.M.S......
..A..MSMS.
.M.S.MAA..
..A.ASMSM.
.M.S.M....
..........
S.S.S.S.S.
.A.A.A.A..
M.M.M.M.M.
..........
`

func TestSolve_Example(t *testing.T) {
	ans, err := Solve(example, config.Default())
	require.NoError(t, err)
	require.Equal(t, "18", ans.Part1)
	require.Equal(t, "9", ans.Part2)
}

func TestCountCrosses_Sparse(t *testing.T) {
	g, err := gridgraph.Parse(crosses)
	require.NoError(t, err)
	require.Equal(t, 9, CountCrosses(g))
}

func TestCountWord_Small(t *testing.T) {
	g, err := gridgraph.Parse("..X...\n.SAMX.\n.A..A.\nXMAS.S\n.X....\n")
	require.NoError(t, err)
	require.Equal(t, 4, CountWord(g, "XMAS"))
}

func TestSolve_Empty(t *testing.T) {
	_, err := Solve("", config.Default())
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
