// SPDX-License-Identifier: MIT

// Package clique enumerates cliques of undirected core.Graph values.
//
//   - Triangles: all 3-cliques, each as a sorted triple.
//   - Maximal:   every maximal clique via Bron–Kerbosch with pivoting.
//   - Maximum:   the largest clique, ties broken lexicographically.
//
// Results are deterministic: members are sorted and candidate sets are
// iterated in ascending ID order.
package clique
