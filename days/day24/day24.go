// SPDX-License-Identifier: MIT

// Package day24 solves crossed wires: simulating a gate network and finding
// the output pairs swapped in a ripple-carry adder.
package day24

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/core"
	"github.com/katalvlaran/advent2024/dfs"
	"github.com/katalvlaran/advent2024/logging"
	"github.com/katalvlaran/advent2024/puzzle"
)

// Gate operators.
const (
	AND = "AND"
	OR  = "OR"
	XOR = "XOR"
)

var (
	// ErrMalformed is returned for unreadable wire or gate lines.
	ErrMalformed = errors.New("day24: malformed circuit")
	// ErrUndriven is returned when a gate reads a wire nothing sets.
	ErrUndriven = errors.New("day24: wire has no value")
	// ErrNotAdder is returned by Miswired for circuits without an x00/y00 half adder.
	ErrNotAdder = errors.New("day24: circuit is not a ripple-carry adder")
)

// Solver registers day 24.
var Solver = puzzle.Solver{
	Day:   24,
	Title: "Crossed Wires",
	Notes: `Initial wire values and AND/OR/XOR gates; z wires hold the output bits, z00 least significant.

* **Part 1:** the number on the z wires after the gates settle.
* **Part 2:** the circuit should add x and y, but four pairs of gate outputs are
  swapped. List the eight wires, sorted and comma-separated.

Gates are edges of a directed wire graph and evaluate in topological order.
Swapped outputs are the gates that break the structure of a ripple-carry adder:
every z is an XOR except the final carry (an OR); an XOR not fed by x/y drives a z;
an x/y XOR feeds an XOR; an AND feeds an OR (bit 0 excepted).`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// Gate drives Out with Op applied to A and B.
type Gate struct {
	A, B, Op, Out string
}

// Circuit is the wire graph: an edge runs from each gate input to its output.
type Circuit struct {
	Initial map[string]int
	Gates   map[string]Gate
	Wires   *core.Graph
}

// Parse reads "name: bit" lines, a blank line, then "a OP b -> out" lines.
func Parse(input string) (*Circuit, error) {
	blocks, err := puzzle.Blocks(input)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 2 {
		return nil, fmt.Errorf("%w: want 2 sections, got %d", ErrMalformed, len(blocks))
	}
	c := &Circuit{
		Initial: make(map[string]int),
		Gates:   make(map[string]Gate),
		Wires:   core.NewGraph(core.WithDirected(true)),
	}
	for _, ln := range blocks[0] {
		name, bit, ok := strings.Cut(ln, ": ")
		if !ok || (bit != "0" && bit != "1") {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, ln)
		}
		c.Initial[name] = int(bit[0] - '0')
		if err := c.Wires.AddVertex(name); err != nil {
			return nil, err
		}
	}
	for _, ln := range blocks[1] {
		f := strings.Fields(ln)
		if len(f) != 5 || f[3] != "->" {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, ln)
		}
		g := Gate{A: f[0], Op: f[1], B: f[2], Out: f[4]}
		switch g.Op {
		case AND, OR, XOR:
		default:
			return nil, fmt.Errorf("%w: unknown operator in %q", ErrMalformed, ln)
		}
		if _, dup := c.Gates[g.Out]; dup {
			return nil, fmt.Errorf("%w: %s driven twice", ErrMalformed, g.Out)
		}
		c.Gates[g.Out] = g
		for _, in := range []string{g.A, g.B} {
			if c.Wires.HasEdge(in, g.Out) {
				continue
			}
			if _, err := c.Wires.AddEdge(in, g.Out, 0); err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, ln, err)
			}
		}
		v, err := c.Wires.Vertex(g.Out)
		if err != nil {
			return nil, err
		}
		v.Metadata["op"] = g.Op
	}
	return c, nil
}

// Simulate evaluates every gate and returns all wire values.
func (c *Circuit) Simulate() (map[string]int, error) {
	order, err := dfs.TopologicalSort(c.Wires)
	if err != nil {
		return nil, fmt.Errorf("day24: %w", err)
	}
	vals := make(map[string]int, len(order))
	for k, v := range c.Initial {
		vals[k] = v
	}
	for _, w := range order {
		g, ok := c.Gates[w]
		if !ok {
			if _, set := vals[w]; !set {
				return nil, fmt.Errorf("%w: %s", ErrUndriven, w)
			}
			continue
		}
		a, b := vals[g.A], vals[g.B]
		switch g.Op {
		case AND:
			vals[w] = a & b
		case OR:
			vals[w] = a | b
		case XOR:
			vals[w] = a ^ b
		}
	}
	return vals, nil
}

// Number assembles the bits of the wires starting with prefix, bit 0 from
// prefix+"00".
func Number(vals map[string]int, prefix string) int64 {
	var n int64
	for w, v := range vals {
		if !strings.HasPrefix(w, prefix) || v == 0 {
			continue
		}
		var bit int
		if _, err := fmt.Sscanf(w[len(prefix):], "%d", &bit); err != nil || bit > 62 {
			continue
		}
		n |= 1 << bit
	}
	return n
}

// Miswired returns the gate outputs that break the ripple-carry adder
// structure, sorted.
func (c *Circuit) Miswired() ([]string, error) {
	_, sum0 := c.find("x00", "y00", XOR)
	_, carry0 := c.find("x00", "y00", AND)
	if !sum0 || !carry0 {
		return nil, ErrNotAdder
	}

	lastZ := ""
	for out := range c.Gates {
		if strings.HasPrefix(out, "z") && out > lastZ {
			lastZ = out
		}
	}

	bad := make(map[string]bool)
	for out, g := range c.Gates {
		fromInputs := isInput(g.A) && isInput(g.B)
		firstBit := fromInputs && strings.HasSuffix(g.A, "00") && strings.HasSuffix(g.B, "00")
		consumers, err := c.consumerOps(out)
		if err != nil {
			return nil, err
		}
		switch {
		case strings.HasPrefix(out, "z") && out != lastZ && g.Op != XOR:
			bad[out] = true
		case out == lastZ && g.Op != OR:
			bad[out] = true
		case g.Op == XOR && !fromInputs && !strings.HasPrefix(out, "z"):
			bad[out] = true
		case g.Op == XOR && fromInputs && !firstBit && !consumers[XOR]:
			bad[out] = true
		case g.Op == AND && !firstBit && !consumers[OR]:
			bad[out] = true
		}
	}

	out := make([]string, 0, len(bad))
	for w := range bad {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

// find returns the output of the op gate reading a and b.
func (c *Circuit) find(a, b, op string) (string, bool) {
	for out, g := range c.Gates {
		if g.Op == op && ((g.A == a && g.B == b) || (g.A == b && g.B == a)) {
			return out, true
		}
	}
	return "", false
}

// consumerOps returns the operators of the gates reading wire.
func (c *Circuit) consumerOps(wire string) (map[string]bool, error) {
	next, err := c.Wires.NeighborIDs(wire)
	if err != nil {
		return nil, err
	}
	ops := make(map[string]bool, len(next))
	for _, n := range next {
		ops[c.Gates[n].Op] = true
	}
	return ops, nil
}

func isInput(w string) bool {
	return strings.HasPrefix(w, "x") || strings.HasPrefix(w, "y")
}

// Solve simulates the circuit and lists the swapped wires. Part 2 stays
// empty for circuits that are not adders.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	vals, err := c.Simulate()
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{Part1: puzzle.Itoa(Number(vals, "z"))}

	wires, err := c.Miswired()
	switch {
	case errors.Is(err, ErrNotAdder):
		logger := logging.Get("day24")
		logger.Debug().Msg("Circuit is not an adder, skipping part 2")
	case err != nil:
		return puzzle.Answer{}, err
	default:
		ans.Part2 = strings.Join(wires, ",")
	}
	return ans, nil
}
