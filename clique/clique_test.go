// SPDX-License-Identifier: MIT

package clique_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/clique"
	"github.com/katalvlaran/advent2024/core"
)

func graphOf(t *testing.T, pairs ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(pairs); i += 2 {
		_, err := g.AddEdge(pairs[i], pairs[i+1], 0)
		require.NoError(t, err)
	}
	return g
}

// K4 on a-d plus a pendant edge d-e.
func TestMaximal_K4WithTail(t *testing.T) {
	g := graphOf(t, "a", "b", "a", "c", "a", "d", "b", "c", "b", "d", "c", "d", "d", "e")

	got, err := clique.Maximal(g)
	require.NoError(t, err)
	want := [][]string{{"a", "b", "c", "d"}, {"d", "e"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Maximal mismatch (-want +got):\n%s", diff)
	}

	best, err := clique.Maximum(g)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, best)

	tri, err := clique.Triangles(g)
	require.NoError(t, err)
	require.Len(t, tri, 4)
	require.Equal(t, [3]string{"a", "b", "c"}, tri[0])
}

func TestMaximum_TieBreak(t *testing.T) {
	g := graphOf(t, "x", "y", "b", "c")
	best, err := clique.Maximum(g)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, best)
}

func TestErrors(t *testing.T) {
	_, err := clique.Maximal(nil)
	require.ErrorIs(t, err, clique.ErrGraphNil)
	_, err = clique.Triangles(core.NewGraph(core.WithDirected(true)))
	require.ErrorIs(t, err, clique.ErrDirectedGraph)

	best, err := clique.Maximum(core.NewGraph())
	require.NoError(t, err)
	require.Nil(t, best)
}
