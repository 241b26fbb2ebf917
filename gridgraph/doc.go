// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D character grid as a graph.
//
// What:
//
//   - Grid wraps a rectangular rune matrix parsed from puzzle text.
//   - Point and Dir give row/column arithmetic, turning and Manhattan distance.
//   - Components finds regions of equal runes (flood fill, Conn4 or Conn8).
//   - ToCoreGraph converts passable cells to a *core.Graph so bfs, dfs and
//     dijkstra can run on them.
//
// Complexity:
//
//   - Parse, Clone, String: O(W×H).
//   - Components:           O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ToCoreGraph:          O(W×H), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadVertexID: ParseVertexID got something other than "row,col".
package gridgraph
