// SPDX-License-Identifier: MIT

package day12

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
)

const large = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`

func TestSolve_Examples(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		part1, part2 string
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC\n", "140", "80"},
		{"nested", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n", "772", "436"},
		{"e-shape", "EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE\n", "692", "236"},
		{"diagonal holes", "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA\n", "1184", "368"},
		{"large", large, "1930", "1206"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ans, err := Solve(tc.input, config.Default())
			require.NoError(t, err)
			require.Equal(t, tc.part1, ans.Part1)
			require.Equal(t, tc.part2, ans.Part2)
		})
	}
}

func TestMeasure_Small(t *testing.T) {
	g, err := gridgraph.Parse("AAAA\nBBCD\nBBCC\nEEEC\n")
	require.NoError(t, err)
	want := []Plot{
		{Plant: 'A', Area: 4, Perimeter: 10, Sides: 4},
		{Plant: 'B', Area: 4, Perimeter: 8, Sides: 4},
		{Plant: 'C', Area: 4, Perimeter: 10, Sides: 8},
		{Plant: 'D', Area: 1, Perimeter: 4, Sides: 4},
		{Plant: 'E', Area: 3, Perimeter: 8, Sides: 4},
	}
	if diff := cmp.Diff(want, Measure(g)); diff != "" {
		t.Errorf("Measure mismatch (-want +got):\n%s", diff)
	}
}
