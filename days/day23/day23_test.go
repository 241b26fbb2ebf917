// SPDX-License-Identifier: MIT

package day23

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/clique"
	"github.com/katalvlaran/advent2024/config"
)

const example = `kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn
`

func TestSolve_Example(t *testing.T) {
	ans, err := Solve(example, config.Default())
	require.NoError(t, err)
	require.Equal(t, "7", ans.Part1)
	require.Equal(t, "co,de,ka,ta", ans.Part2)
}

func TestChiefTriangles(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)

	all, err := clique.Triangles(g)
	require.NoError(t, err)
	require.Len(t, all, 12)

	got, err := ChiefTriangles(g, "t")
	require.NoError(t, err)
	want := [][3]string{
		{"co", "de", "ta"},
		{"co", "ka", "ta"},
		{"de", "ka", "ta"},
		{"qp", "td", "wh"},
		{"tb", "vc", "wq"},
		{"tc", "td", "wh"},
		{"td", "wh", "yn"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ChiefTriangles mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("ab-cd\nefgh\n")
	require.ErrorIs(t, err, ErrMalformed)
	_, err = Parse("ab-ab\n")
	require.ErrorIs(t, err, ErrMalformed)

	g, err := Parse("ab-cd\ncd-ab\n")
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}
