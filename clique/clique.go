// SPDX-License-Identifier: MIT

package clique

import (
	"errors"
	"sort"

	"github.com/katalvlaran/advent2024/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; cliques need symmetric adjacency.
	ErrDirectedGraph = errors.New("clique: undirected graph required")
)

// set is a string set keyed by vertex ID.
type set map[string]bool

// sorted returns the members of s in ascending order.
func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// intersect returns s ∩ other as a new set.
func (s set) intersect(other set) set {
	out := make(set)
	for id := range s {
		if other[id] {
			out[id] = true
		}
	}
	return out
}

// adjacency snapshots g into neighbor sets, dropping self-loops.
func adjacency(g *core.Graph) (map[string]set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	adj := make(map[string]set, g.VertexCount())
	for _, v := range g.Vertices() {
		ids, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		adj[v] = make(set, len(ids))
		for _, n := range ids {
			if n != v {
				adj[v][n] = true
			}
		}
	}
	return adj, nil
}

// bronKerbosch holds the adjacency and the cliques found so far.
type bronKerbosch struct {
	adj map[string]set
	out [][]string
}

// expand reports every maximal clique that extends r using candidates p
// and excluding x. The pivot is the vertex of p ∪ x with most neighbors in p
// (smallest ID on ties), so only p \ N(pivot) is branched on.
func (bk *bronKerbosch) expand(r []string, p, x set) {
	if len(p) == 0 && len(x) == 0 {
		c := append([]string(nil), r...)
		sort.Strings(c)
		bk.out = append(bk.out, c)
		return
	}

	pivot, best := "", -1
	for _, u := range append(p.sorted(), x.sorted()...) {
		if n := len(p.intersect(bk.adj[u])); n > best {
			pivot, best = u, n
		}
	}
	for _, v := range p.sorted() {
		if bk.adj[pivot][v] {
			continue
		}
		bk.expand(append(r, v), p.intersect(bk.adj[v]), x.intersect(bk.adj[v]))
		delete(p, v)
		x[v] = true
	}
}

// Maximal returns every maximal clique of the undirected graph g. Each clique
// is sorted ascending and the list is sorted lexicographically.
//
// Complexity: O(3^(V/3)) worst case; sparse puzzle graphs finish quickly.
func Maximal(g *core.Graph) ([][]string, error) {
	adj, err := adjacency(g)
	if err != nil {
		return nil, err
	}
	if len(adj) == 0 {
		return nil, nil
	}
	p := make(set, len(adj))
	for v := range adj {
		p[v] = true
	}
	bk := &bronKerbosch{adj: adj}
	bk.expand(nil, p, make(set))

	sort.Slice(bk.out, func(i, j int) bool { return less(bk.out[i], bk.out[j]) })
	return bk.out, nil
}

// Maximum returns the largest clique of g, breaking ties by the
// lexicographically smallest member list. An empty graph yields nil.
func Maximum(g *core.Graph) ([]string, error) {
	all, err := Maximal(g)
	if err != nil {
		return nil, err
	}
	var best []string
	for _, c := range all {
		if len(c) > len(best) {
			best = c
		}
	}
	return best, nil
}

// Triangles returns every 3-clique {a, b, c} with a < b < c, sorted.
// Complexity: O(V·d²).
func Triangles(g *core.Graph) ([][3]string, error) {
	adj, err := adjacency(g)
	if err != nil {
		return nil, err
	}
	var out [][3]string
	verts := make(set, len(adj))
	for v := range adj {
		verts[v] = true
	}
	for _, a := range verts.sorted() {
		nbrs := adj[a].sorted()
		for i, b := range nbrs {
			if b <= a {
				continue
			}
			for _, c := range nbrs[i+1:] {
				if adj[b][c] {
					out = append(out, [3]string{a, b, c})
				}
			}
		}
	}
	return out, nil
}

// less orders string slices element-wise, shorter prefix first.
func less(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
