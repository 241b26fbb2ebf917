// SPDX-License-Identifier: MIT

package day20

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/logging"
)

const example = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

func TestTrack_Best(t *testing.T) {
	tr, err := Parse(example)
	require.NoError(t, err)
	require.Equal(t, 84, tr.Best)
}

func TestSavings_ShortCheats(t *testing.T) {
	tr, err := Parse(example)
	require.NoError(t, err)
	want := map[int]int{
		2: 14, 4: 14, 6: 2, 8: 4, 10: 2, 12: 3,
		20: 1, 36: 1, 38: 1, 40: 1, 64: 1,
	}
	if diff := cmp.Diff(want, tr.Savings(2)); diff != "" {
		t.Fatalf("Savings(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestCountCheats_LongCheats(t *testing.T) {
	tr, err := Parse(example)
	require.NoError(t, err)
	require.Equal(t, 3, tr.CountCheats(20, 76))
	require.Equal(t, 7, tr.CountCheats(20, 74))
	require.Equal(t, 285, tr.CountCheats(20, 50))
}

func TestSolve_Configured(t *testing.T) {
	cfg, err := config.New(map[string]interface{}{"day20.min_saving": 20})
	require.NoError(t, err)
	ans, err := Solve(example, cfg)
	require.NoError(t, err)
	require.Equal(t, "5", ans.Part1)

	cfg, err = config.New(map[string]interface{}{"day20.min_saving": 50})
	require.NoError(t, err)
	ans, err = Solve(example, cfg)
	require.NoError(t, err)
	require.Equal(t, "1", ans.Part1)
	require.Equal(t, "285", ans.Part2)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("#####\n#S..#\n#####\n")
	require.ErrorIs(t, err, ErrMissingMarker)
	_, err = Parse("#####\n#S#E#\n#####\n")
	require.ErrorIs(t, err, ErrNoPath)
}

func TestSolve_LogsTrack(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupWriter(&buf, 2, true)
	t.Cleanup(func() { logging.SetupWriter(io.Discard, 0, true) })

	_, err := Solve(example, config.Default())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Track measured")
	require.Contains(t, buf.String(), "best=84")
}
