// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent2024/core"
)

// pathCounter memoises the number of target-terminated paths per vertex.
type pathCounter struct {
	graph  *core.Graph
	opts   options
	target func(id string) bool
	state  map[string]int
	memo   map[string]int64
}

// CountPaths returns the number of distinct directed paths that start at from
// and end at any vertex for which target returns true. A path stops at the
// first target it reaches. The graph must be acyclic along the explored
// region, otherwise ErrCycleDetected is returned.
//
// Complexity: O(V + E) thanks to memoisation.
func CountPaths(g *core.Graph, from string, target func(id string) bool, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Directed() {
		return 0, ErrUndirectedGraph
	}
	if !g.HasVertex(from) {
		return 0, ErrStartVertexNotFound
	}
	pc := &pathCounter{
		graph:  g,
		opts:   buildOptions(opts),
		target: target,
		state:  make(map[string]int),
		memo:   make(map[string]int64),
	}

	return pc.count(from)
}

func (pc *pathCounter) count(id string) (int64, error) {
	if n, ok := pc.memo[id]; ok {
		return n, nil
	}
	if pc.target(id) {
		pc.memo[id] = 1
		return 1, nil
	}
	if pc.state[id] == Gray {
		return 0, fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	}
	select {
	case <-pc.opts.ctx.Done():
		return 0, pc.opts.ctx.Err()
	default:
	}
	pc.state[id] = Gray

	next, err := pc.graph.NeighborIDs(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	var total int64
	for _, nbr := range next {
		n, err := pc.count(nbr)
		if err != nil {
			return 0, err
		}
		total += n
	}

	pc.state[id] = Black
	pc.memo[id] = total

	return total, nil
}

// Reachable returns every vertex reachable from start (start included),
// following outgoing edges only. The result is keyed by vertex ID.
//
// Complexity: O(V + E).
func Reachable(g *core.Graph, start string, opts ...Option) (map[string]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	o := buildOptions(opts)

	seen := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		next, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nbr := range next {
			if !seen[nbr] {
				seen[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}

	return seen, nil
}
