// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values with non-negative integer weights.
//
// Vertices are settled in increasing distance using a binary min-heap with
// lazy decrease-key: improved distances push a fresh entry and stale entries
// are skipped on pop. Ties are broken by vertex ID so runs are reproducible.
//
// Options:
//
//	Source(id)               – required starting vertex.
//	WithReturnPath()         – also return the predecessor map (see PathTo).
//	WithMaxDistance(d)       – do not settle vertices farther than d.
//	WithInfEdgeThreshold(t)  – treat edges with weight ≥ t as walls.
//
// Combining a forward run from the start with a run on core.Reverse from the
// goal gives, for every vertex v, dist_fwd[v] + dist_bwd[v]; v lies on some
// optimal path exactly when that sum equals the optimum.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
