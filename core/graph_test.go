// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/advent2024/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v; want ErrEmptyVertexID", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("duplicate AddVertex(A): %v", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount = %d; want 1", got)
	}
	if !g.HasVertex("A") || g.HasVertex("B") || g.HasVertex("") {
		t.Errorf("HasVertex reports wrong membership")
	}
}

// TestGraph_AddEdgeConstraints covers weight, loop and multi-edge policies.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "B", 3); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("weighted edge on unweighted graph: got %v", err)
	}
	if _, err := g.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("self-loop: got %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge(A,B): %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge: got %v", err)
	}
	if _, err := g.AddEdge("", "B", 0); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty endpoint: got %v", err)
	}

	m := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	m.AddEdge("A", "B", 0)
	m.AddEdge("A", "B", 0)
	m.AddEdge("A", "A", 0)
	if got := m.EdgeCount(); got != 3 {
		t.Errorf("multigraph EdgeCount = %d; want 3", got)
	}
}

// TestGraph_UndirectedMirror checks both orientations resolve for undirected edges.
func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	if !g.HasEdge("A", "B") || !g.HasEdge("B", "A") {
		t.Fatalf("undirected edge must be visible from both endpoints")
	}

	d := core.NewGraph(core.WithDirected(true))
	d.AddEdge("A", "B", 0)
	if !d.HasEdge("A", "B") || d.HasEdge("B", "A") {
		t.Fatalf("directed edge must be one-way")
	}
}

// TestGraph_NeighborIDsSorted anchors deterministic ordering of queries.
func TestGraph_NeighborIDsSorted(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"D", "B", "C"} {
		g.AddEdge("A", v, 0)
	}
	got, err := g.NeighborIDs("A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborIDs(A) = %v; want %v", got, want)
	}
	back, _ := g.NeighborIDs("C")
	if want := []string{"A"}; !reflect.DeepEqual(back, want) {
		t.Errorf("NeighborIDs(C) = %v; want %v", back, want)
	}
	if _, err := g.NeighborIDs("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("NeighborIDs(Z): got %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(g.Vertices(), want) {
		t.Errorf("Vertices() = %v; want %v", g.Vertices(), want)
	}
}

// TestGraph_EdgesOrderedNumerically ensures e10 sorts after e9.
func TestGraph_EdgesOrderedNumerically(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 11; i++ {
		g.AddEdge(string(rune('a'+i)), string(rune('b'+i)), 0)
	}
	edges := g.Edges()
	if edges[9].ID != "e10" || edges[10].ID != "e11" {
		t.Errorf("edge order = %s,%s; want e10,e11", edges[9].ID, edges[10].ID)
	}
}

// TestGraph_Degree counts directed and undirected incidences.
func TestGraph_Degree(t *testing.T) {
	d := core.NewGraph(core.WithDirected(true))
	d.AddEdge("A", "B", 0)
	d.AddEdge("C", "B", 0)
	in, out, und, err := d.Degree("B")
	if err != nil || in != 2 || out != 0 || und != 0 {
		t.Errorf("Degree(B) = %d,%d,%d,%v; want 2,0,0,nil", in, out, und, err)
	}

	u := core.NewGraph(core.WithLoops())
	u.AddEdge("A", "A", 0)
	u.AddEdge("A", "B", 0)
	_, _, und, _ = u.Degree("A")
	if und != 3 {
		t.Errorf("undirected Degree(A) = %d; want 3", und)
	}
}

// TestInducedSubgraph keeps only edges between kept vertices.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("47", "53", 0)
	g.AddEdge("53", "29", 0)
	g.AddEdge("97", "47", 0)

	sub := core.InducedSubgraph(g, map[string]bool{"47": true, "53": true})
	if want := []string{"47", "53"}; !reflect.DeepEqual(sub.Vertices(), want) {
		t.Errorf("Vertices = %v; want %v", sub.Vertices(), want)
	}
	if sub.EdgeCount() != 1 || !sub.HasEdge("47", "53") {
		t.Errorf("induced edges wrong: count=%d", sub.EdgeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("source graph mutated")
	}
	id, _ := sub.AddEdge("53", "47", 0)
	if id != "e4" {
		t.Errorf("edge counter not carried over: got %s", id)
	}
}

// TestReverse flips directed edges and keeps weights.
func TestReverse(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "B", 7)
	r := core.Reverse(g)
	if !r.HasEdge("B", "A") || r.HasEdge("A", "B") {
		t.Fatalf("reverse did not flip A→B")
	}
	edges, _ := r.Neighbors("B")
	if len(edges) != 1 || edges[0].Weight != 7 {
		t.Errorf("reversed edge = %+v; want weight 7", edges)
	}
}

// TestVertexMetadata verifies metadata is reachable through Vertex.
func TestVertexMetadata(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("z00")
	v, err := g.Vertex("z00")
	if err != nil {
		t.Fatal(err)
	}
	v.Metadata["op"] = "XOR"
	again, _ := g.Vertex("z00")
	if again.Metadata["op"] != "XOR" {
		t.Errorf("metadata not persisted")
	}
	if _, err := g.Vertex("nope"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Vertex(nope): got %v", err)
	}
}
