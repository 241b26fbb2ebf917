// SPDX-License-Identifier: MIT

package day15

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/gridgraph"
)

const small = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

const large = `##########
#..O..O.O#
#......O.#
#.OO..O.O#
#..O@..O.#
#O#..O...#
#O..O..O.#
#.OO.O.OO#
#....O...#
##########

<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
<<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
>^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
<><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^
`

func TestSolve_Examples(t *testing.T) {
	ans, err := Solve(small, config.Default())
	require.NoError(t, err)
	require.Equal(t, "2028", ans.Part1)

	ans, err = Solve(large, config.Default())
	require.NoError(t, err)
	require.Equal(t, "10092", ans.Part1)
	require.Equal(t, "9021", ans.Part2)
}

func TestSmall_FinalMap(t *testing.T) {
	w, moves, err := Parse(small)
	require.NoError(t, err)
	require.Equal(t, gridgraph.Point{Row: 2, Col: 2}, w.Robot)
	require.Len(t, moves, 15)

	w.Run(moves)
	want := "########\n" +
		"#....OO#\n" +
		"##.....#\n" +
		"#.....O#\n" +
		"#.#O@..#\n" +
		"#...O..#\n" +
		"#...O..#\n" +
		"########\n"
	require.Equal(t, want, w.Grid.String())
}

func TestWide_PushesTwoBoxes(t *testing.T) {
	w, moves, err := Parse("#######\n#...#.#\n#.....#\n#..OO@#\n#..O..#\n#.....#\n#######\n\n<vv<<^^<<^^\n")
	require.NoError(t, err)
	wide := w.Widen()
	require.Equal(t, "##....[][]@.##", firstRowWith(wide.Grid, '@'))

	wide.Run(moves)
	want := "##############\n" +
		"##...[].##..##\n" +
		"##...@.[]...##\n" +
		"##....[]....##\n" +
		"##..........##\n" +
		"##..........##\n" +
		"##############\n"
	require.Equal(t, want, wide.Grid.String())
	require.Equal(t, 618, wide.GPS())
}

func firstRowWith(g *gridgraph.Grid, r rune) string {
	p, _ := g.Find(r)
	row := make([]rune, g.Width)
	for c := range row {
		row[c] = g.At(gridgraph.Point{Row: p.Row, Col: c})
	}
	return string(row)
}

func TestStep_Lines(t *testing.T) {
	w, _, err := Parse("#..O@..O.#\n")
	require.NoError(t, err)
	require.True(t, w.Step(gridgraph.West))
	require.Equal(t, "#.O@...O.#\n", w.Grid.String())

	w, _, err = Parse("#.#O@..O.#\n")
	require.NoError(t, err)
	require.False(t, w.Step(gridgraph.West))
	require.Equal(t, gridgraph.Point{Row: 0, Col: 4}, w.Robot)
}

func TestParse_Errors(t *testing.T) {
	_, _, err := Parse("#..#\n\n<\n")
	require.ErrorIs(t, err, ErrNoRobot)
	_, _, err = Parse("#@.#\n\n<x\n")
	require.ErrorIs(t, err, ErrBadMove)
}
