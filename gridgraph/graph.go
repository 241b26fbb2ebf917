// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2024/core"
)

// VertexID formats the core.Graph vertex identifier for p.
func VertexID(p Point) string {
	return p.String()
}

// ParseVertexID is the inverse of VertexID.
func ParseVertexID(id string) (Point, error) {
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return Point{r, c}, nil
}

// ToCoreGraph converts the passable cells of g into an unweighted, undirected
// *core.Graph under 4-connectivity. Each cell becomes a vertex with ID
// VertexID(p) and metadata {"row", "col", "value"}; adjacent passable cells
// are joined by one edge.
//
// Complexity: O(W×H) time and memory.
func (g *Grid) ToCoreGraph(passable func(rune) bool) (*core.Graph, error) {
	out := core.NewGraph()
	for _, p := range g.Points() {
		if !passable(g.At(p)) {
			continue
		}
		id := VertexID(p)
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
		v, err := out.Vertex(id)
		if err != nil {
			return nil, err
		}
		v.Metadata["row"] = p.Row
		v.Metadata["col"] = p.Col
		v.Metadata["value"] = g.At(p)
	}
	// Link each cell to its East and South neighbor so every pair is added once.
	for _, p := range g.Points() {
		if !passable(g.At(p)) {
			continue
		}
		for _, d := range []Dir{East, South} {
			q := p.Move(d)
			if !g.InBounds(q) || !passable(g.At(q)) {
				continue
			}
			if _, err := out.AddEdge(VertexID(p), VertexID(q), 0); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
