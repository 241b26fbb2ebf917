// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFSResult carries Order, Depth and Parent; PathTo rebuilds a route.
//   - WithFilterNeighbor prunes individual edges (e.g. corrupted grid cells)
//     without rebuilding the graph.
//   - WithMaxDepth bounds the search radius; WithStopAt ends it early once a
//     target is dequeued.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues them in that order,
//	so the visit sequence and the parent tree are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "0,0",
//	    bfs.WithFilterNeighbor(func(_, nbr string) bool { return !blocked[nbr] }),
//	    bfs.WithStopAt("6,6"),
//	)
//	steps := res.Depth["6,6"]
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph, ErrOptionViolation,
//     ErrNeighbors, ErrNoPath (PathTo) and wrapped OnVisit errors.
package bfs
