// SPDX-License-Identifier: MIT

package day05

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/dfs"
)

const example = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestSolve_Example(t *testing.T) {
	ans, err := Solve(example, config.Default())
	require.NoError(t, err)
	require.Equal(t, "143", ans.Part1)
	require.Equal(t, "123", ans.Part2)
}

func TestAudit(t *testing.T) {
	q, err := Parse(example)
	require.NoError(t, err)
	want := []bool{true, true, true, false, false, false}
	for i, u := range q.Updates {
		require.Equal(t, want[i], q.InOrder(u), "update %d", i)
	}

	got, err := q.Reorder([]string{"97", "13", "75", "29", "47"})
	require.NoError(t, err)
	require.Equal(t, []string{"97", "75", "47", "29", "13"}, got)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("1|x\n")
	require.ErrorIs(t, err, ErrMalformed)

	q, err := Parse("1|2\n2|1\n\n1,2\n")
	require.NoError(t, err)
	_, err = q.Reorder(q.Updates[0])
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestSolve_PageNumbers(t *testing.T) {
	// Page IDs keep their spelling in the rule graph; sums use their values.
	ans, err := Solve("1|02\n02|3\n\n1,02,3\n3,02,1\n", config.Default())
	require.NoError(t, err)
	require.Equal(t, "2", ans.Part1)
	require.Equal(t, "2", ans.Part2)
}
