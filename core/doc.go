// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph every puzzle solver in this
// repository builds on: string-keyed vertices, integer-weighted edges and
// deterministic (sorted) enumeration.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge insertion via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic edge IDs ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Core Methods:
//
//	AddVertex(id string) error                           // O(1)
//	HasVertex(id string) bool                            // O(1)
//	AddEdge(from, to string, weight int64) (string, error) // O(1)†
//	HasEdge(from, to string) bool                        // O(1)
//	Neighbors(id string) ([]*Edge, error)                // O(d·log d)
//	NeighborIDs(id string) ([]string, error)             // O(d·log d)
//	Vertices() []string                                  // O(V·log V)
//	Edges() []*Edge                                      // O(E·log E)
//	Degree(id string) (in, out, undirected int, err error)
//
// Views (views.go):
//
//	InducedSubgraph(g, keep) *Graph // vertices in keep and the edges between them
//	Reverse(g) *Graph               // every directed edge flipped
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized: atomic ID generation + nested-map insertion.
package core
