// SPDX-License-Identifier: MIT

package core

// InducedSubgraph returns a new Graph containing only the vertices v with
// keep[v] == true and every edge whose endpoints are both kept. Edge IDs,
// weights and directedness are preserved; vertex Metadata is shared.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on g.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.link(&Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed})
	}
	out.nextEdgeID = g.nextEdgeID
	g.muEdgeAdj.RUnlock()

	return out
}

// Reverse returns a copy of g with every directed edge flipped (To→From).
// Undirected edges are copied unchanged. Used to run single-source searches
// "backwards" from a target.
//
// Complexity: O(V + E).
func Reverse(g *Graph) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		if e.Directed {
			ne.From, ne.To = e.To, e.From
		}
		out.link(ne)
	}
	out.nextEdgeID = g.nextEdgeID
	g.muEdgeAdj.RUnlock()

	return out
}

// link stores e and its adjacency entries on a graph that is not yet shared.
func (g *Graph) link(e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}
