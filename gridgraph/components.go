// SPDX-License-Identifier: MIT

package gridgraph

// Region is a maximal connected set of cells that hold the same rune.
type Region struct {
	Value rune
	Cells []Point
}

// Components partitions the grid into regions of equal runes connected
// under conn. Regions are returned in row-major order of their first cell;
// cells inside a region are in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(conn Connectivity) []Region {
	seen := make([][]bool, g.Height)
	for r := range seen {
		seen[r] = make([]bool, g.Width)
	}

	var regions []Region
	for _, start := range g.Points() {
		if seen[start.Row][start.Col] {
			continue
		}
		value := g.At(start)
		seen[start.Row][start.Col] = true
		queue := []Point{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, q := range g.Neighbors(queue[qi], conn) {
				if seen[q.Row][q.Col] || g.At(q) != value {
					continue
				}
				seen[q.Row][q.Col] = true
				queue = append(queue, q)
			}
		}
		regions = append(regions, Region{Value: value, Cells: queue})
	}

	return regions
}
