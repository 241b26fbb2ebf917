// SPDX-License-Identifier: MIT

package day11

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

func TestCountAfter_Blinks(t *testing.T) {
	stones := []int64{125, 17}
	for blinks, want := range []int64{2, 3, 4, 5, 9, 13, 22} {
		require.Equal(t, want, CountAfter(stones, blinks), "blinks=%d", blinks)
	}
	require.Equal(t, int64(55312), CountAfter(stones, 25))
}

func TestBlink_Rules(t *testing.T) {
	require.Equal(t, []int64{1}, Blink(0))
	require.Equal(t, []int64{10, 0}, Blink(1000))
	require.Equal(t, []int64{2024}, Blink(1))
	require.Equal(t, []int64{253000}, Blink(125))
}

func TestSolve_Configured(t *testing.T) {
	cfg, err := config.New(map[string]interface{}{"day11.blinks1": 6, "day11.blinks2": 25})
	require.NoError(t, err)
	ans, err := Solve("125 17\n", cfg)
	require.NoError(t, err)
	require.Equal(t, "22", ans.Part1)
	require.Equal(t, "55312", ans.Part2)

	_, err = Solve("  ", cfg)
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)
	_, err = Solve("1 x", cfg)
	require.Error(t, err)
}
