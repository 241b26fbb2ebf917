// SPDX-License-Identifier: MIT

// Package day23 solves LAN party: triangles and the largest clique in the
// network map.
package day23

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2024/clique"
	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrMalformed is returned for a connection line that is not "a-b".
var ErrMalformed = errors.New("day23: malformed connection")

// Solver registers day 23.
var Solver = puzzle.Solver{
	Day:   23,
	Title: "LAN Party",
	Notes: `Each line links two computers.

* **Part 1:** sets of three mutually connected computers where at least one name starts with ` + "`t`" + `.
* **Part 2:** the password: names of the largest fully connected set, sorted and joined by commas.

Part 2 is a maximum-clique search; Bron–Kerbosch with pivoting enumerates the
maximal cliques.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Parse builds the undirected network graph.
func Parse(input string) (*core.Graph, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph()
	for i, ln := range lines {
		a, b, ok := strings.Cut(ln, "-")
		if !ok || a == "" || b == "" || a == b {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformed, i+1, ln)
		}
		if g.HasEdge(a, b) {
			continue
		}
		if _, err := g.AddEdge(a, b, 0); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ChiefTriangles returns the triangles with a member whose name starts with prefix.
func ChiefTriangles(g *core.Graph, prefix string) ([][3]string, error) {
	all, err := clique.Triangles(g)
	if err != nil {
		return nil, err
	}
	var out [][3]string
	for _, t := range all {
		for _, v := range t {
			if strings.HasPrefix(v, prefix) {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

// Password returns the largest clique's names joined by commas.
func Password(g *core.Graph) (string, error) {
	best, err := clique.Maximum(g)
	if err != nil {
		return "", err
	}
	return strings.Join(best, ","), nil
}

// Solve counts the t-triangles and finds the password.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	tri, err := ChiefTriangles(g, "t")
	if err != nil {
		return puzzle.Answer{}, err
	}
	pw, err := Password(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: puzzle.Itoa(len(tri)), Part2: pw}, nil
}
