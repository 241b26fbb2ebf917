// SPDX-License-Identifier: MIT

// Package dfs provides depth-first algorithms on core.Graph:
//
//   - TopologicalSort: dependency order of a DAG (page ordering rules,
//     logic-gate evaluation order). Cycles yield ErrCycleDetected.
//   - CountPaths: number of distinct paths from a vertex to any target in a
//     DAG, memoised so each vertex is expanded once.
//   - Reachable: the set of vertices reachable along outgoing edges.
//
// All walkers honor WithContext for cancellation and iterate neighbors in
// the deterministic order core provides.
//
// Complexity: O(V + E) time and O(V) memory for every algorithm here.
package dfs
