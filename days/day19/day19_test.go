// SPDX-License-Identifier: MIT

package day19

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
)

const example = `r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
`

func TestSolve_Example(t *testing.T) {
	ans, err := Solve(example, config.Default())
	require.NoError(t, err)
	require.Equal(t, "6", ans.Part1)
	require.Equal(t, "16", ans.Part2)
}

func TestArrangements(t *testing.T) {
	o, err := Parse(example)
	require.NoError(t, err)
	want := map[string]int64{
		"brwrr":  2,
		"bggr":   1,
		"gbbr":   4,
		"rrbgbr": 6,
		"ubwu":   0,
		"bwurrg": 1,
		"brgr":   2,
		"bbrgwb": 0,
		"":       1,
	}
	for design, n := range want {
		require.Equal(t, n, o.Arrangements(design), design)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("r, g, b\n")
	require.ErrorIs(t, err, ErrMalformed)
	_, err = Parse(" , \n\nrg\n")
	require.ErrorIs(t, err, ErrMalformed)
}
