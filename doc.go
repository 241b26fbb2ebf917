// SPDX-License-Identifier: MIT

// Package advent2024 collects Advent of Code 2024 puzzle solutions and the
// small graph toolkit they are written against.
//
// Every day lives in its own package under days/ and exposes
//
//	Solve(input string, cfg config.Config) (puzzle.Answer, error)
//
// registered with the puzzle registry on import. The shared layers are:
//
//	core/       — string-keyed Graph with sorted, deterministic enumeration
//	bfs/        — breadth-first search with depth, parents and neighbor filters
//	dfs/        — topological sort, DAG path counting, reachability
//	dijkstra/   — weighted shortest paths over core.Graph
//	gridgraph/  — rune grids, points, directions, regions, grid→Graph
//	clique/     — Bron–Kerbosch maximal cliques and triangles
//	config/     — koanf layers: defaults, advent.toml, ADVENT_* env, flags
//	logging/    — zerolog console logger
//	puzzle/     — registry, Answer, input loading and debug artefacts
//	samples/    — embedded official samples with their published answers
//
// The advent command (cmd/advent) runs days, checks samples and prints the
// effective configuration:
//
//	advent run 16
//	advent run 18 --input ./input18.txt --debug-dir ./debug
//	advent check
//	advent describe 21
package advent2024
