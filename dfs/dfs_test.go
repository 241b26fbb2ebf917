// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/dfs"
)

func directed(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestTopologicalSort_Order(t *testing.T) {
	g := directed(t,
		[2]string{"47", "53"}, [2]string{"97", "47"}, [2]string{"97", "61"},
		[2]string{"61", "53"}, [2]string{"47", "61"}, [2]string{"53", "29"},
	)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Equal(t, []string{"97", "47", "61", "53", "29"}, order)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(core.NewGraph())
	require.ErrorIs(t, err, dfs.ErrUndirectedGraph)

	g := directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
	_, err = dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(directed(t, [2]string{"a", "b"}), dfs.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestCountPaths_Diamond(t *testing.T) {
	// s→a→t, s→b→t, a→b: three routes from s to t.
	g := directed(t,
		[2]string{"s", "a"}, [2]string{"s", "b"}, [2]string{"a", "t"},
		[2]string{"b", "t"}, [2]string{"a", "b"},
	)
	n, err := dfs.CountPaths(g, "s", func(id string) bool { return id == "t" })
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	n, err = dfs.CountPaths(g, "t", func(id string) bool { return id == "s" })
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCountPaths_Errors(t *testing.T) {
	_, err := dfs.CountPaths(nil, "a", nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := directed(t, [2]string{"a", "b"}, [2]string{"b", "a"}, [2]string{"b", "z"})
	_, err = dfs.CountPaths(g, "missing", func(string) bool { return false })
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.CountPaths(g, "a", func(id string) bool { return id == "z" })
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestReachable(t *testing.T) {
	g := directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"d", "a"})
	seen, err := dfs.Reachable(g, "a")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, seen)

	_, err = dfs.Reachable(g, "x")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}
