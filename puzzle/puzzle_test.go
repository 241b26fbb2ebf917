// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
)

func TestParseDay(t *testing.T) {
	for in, want := range map[string]int{"16": 16, "day4": 4, "Day 25": 25, " 9 ": 9} {
		got, err := ParseDay(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "0", "26", "dayx"} {
		_, err := ParseDay(bad)
		require.ErrorIs(t, err, ErrBadDay, bad)
	}
}

func TestRegistry(t *testing.T) {
	mu.Lock()
	saved := registry
	registry = make(map[int]Solver)
	mu.Unlock()
	t.Cleanup(func() { mu.Lock(); registry = saved; mu.Unlock() })

	solve := func(string, config.Config) (Answer, error) { return Answer{Part1: "1"}, nil }
	Register(Solver{Day: 9, Solve: solve})
	Register(Solver{Day: 2, Solve: solve})
	require.Equal(t, []int{2, 9}, Days())

	_, err := Lookup(3)
	require.ErrorIs(t, err, ErrUnknownDay)
	require.Panics(t, func() { Register(Solver{Day: 9, Solve: solve}) })
	require.Panics(t, func() { Register(Solver{Day: 30, Solve: solve}) })
}

func TestAnswerLines(t *testing.T) {
	require.Equal(t, []string{"part 1: 3"}, Answer{Part1: "3"}.Lines())
	require.Equal(t, []string{"part 1: 3", "part 2: x"}, Answer{Part1: "3", Part2: "x"}.Lines())
	require.Equal(t, "-42", Itoa(int64(-42)))
}

func TestLinesAndBlocks(t *testing.T) {
	_, err := Lines(" \r\n\n")
	require.ErrorIs(t, err, ErrEmptyInput)

	lines, err := Lines("a\r\nb \n\n")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, lines)

	blocks, err := Blocks("1|2\n3|4\n\n\n1,2\n")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1|2", "3|4"}, {"1,2"}}, blocks)
}

func TestLoadAndArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(map[string]interface{}{"input_dir": dir})
	require.NoError(t, err)

	_, err = Load(cfg, 5, "")
	require.True(t, errors.Is(err, ErrInputNotFound))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "input5.txt"), []byte("47|53\n"), 0o644))
	got, err := Load(cfg, 5, "")
	require.NoError(t, err)
	require.Equal(t, "47|53\n", got)

	var a Answer
	a.AddArtifact("day18_path.txt", "O..\n")
	out := filepath.Join(dir, "debug")
	paths, err := WriteArtifacts(out, a)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "day18_path.txt")}, paths)

	paths, err = WriteArtifacts("", a)
	require.NoError(t, err)
	require.Nil(t, paths)
}
