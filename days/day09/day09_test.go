// SPDX-License-Identifier: MIT

package day09

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

func render(blocks []int) string {
	var sb strings.Builder
	for _, id := range blocks {
		if id == free {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

func TestSolve_Example(t *testing.T) {
	ans, err := Solve("2333133121414131402\n", config.Default())
	require.NoError(t, err)
	require.Equal(t, "1928", ans.Part1)
	require.Equal(t, "2858", ans.Part2)
}

func TestCompaction_Layouts(t *testing.T) {
	d, err := Parse("12345")
	require.NoError(t, err)
	require.Equal(t, "0..111....22222", render(d.Blocks))
	require.Equal(t, "022111222......", render(d.CompactBlocks()))

	d, err = Parse("2333133121414131402")
	require.NoError(t, err)
	require.Equal(t, "00992111777.44.333....5555.6666.....8888..", render(d.CompactFiles()))
	require.Equal(t, "00...111...2...333.44.5555.6666.777.888899", render(d.Blocks), "input layout must not change")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("12a")
	require.ErrorIs(t, err, ErrBadDigit)
	_, err = Parse("\n")
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)
}
