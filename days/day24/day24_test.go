// SPDX-License-Identifier: MIT

package day24

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/dfs"
	"github.com/katalvlaran/advent2024/logging"
)

const small = `x00: 1
x01: 1
x02: 1
y00: 0
y01: 1
y02: 0

x00 AND y00 -> z00
x01 XOR y01 -> z01
x02 OR y02 -> z02
`

const large = `x00: 1
x01: 0
x02: 1
x03: 1
x04: 0
y00: 1
y01: 1
y02: 1
y03: 1
y04: 1

ntg XOR fgs -> mjb
y02 OR x01 -> tnw
kwq OR kpj -> z05
x00 OR x03 -> fst
tgd XOR rvg -> z01
vdt OR tnw -> bfw
bfw AND frj -> z10
ffh OR nrd -> bqk
y00 AND y03 -> djm
y03 OR y00 -> psh
bqk OR frj -> z08
tnw OR fst -> frj
gnj AND tgd -> z11
bfw XOR mjb -> z00
x03 OR x00 -> vdt
gnj AND wpb -> z02
x04 AND y00 -> kjc
djm OR pbm -> qhw
nrd AND vdt -> hwm
kjc AND fst -> rvg
y04 OR y02 -> fgs
y01 AND x02 -> pbm
ntg OR kjc -> kwq
psh XOR fgs -> tgd
qhw XOR tgd -> z09
pbm OR djm -> kpj
x03 XOR y03 -> ffh
x00 XOR y04 -> ntg
bfw OR bqk -> z06
nrd XOR fgs -> wpb
frj XOR qhw -> z04
bqk OR frj -> z07
y03 OR x01 -> nrd
hwm AND bqk -> z03
tgd XOR rvg -> z12
tnw OR pbm -> gnj
`

// adder adds two 3-bit numbers, x = 5 and y = 3.
const adder = `x00: 1
x01: 0
x02: 1
y00: 1
y01: 1
y02: 0

x00 XOR y00 -> z00
x00 AND y00 -> c00
x01 XOR y01 -> s01
x01 AND y01 -> a01
s01 XOR c00 -> z01
s01 AND c00 -> b01
a01 OR b01 -> c01
x02 XOR y02 -> s02
x02 AND y02 -> a02
s02 XOR c01 -> z02
s02 AND c01 -> b02
a02 OR b02 -> z03
`

// swapped is adder with the outputs of b01 and z02 exchanged.
const swapped = `x00: 1
x01: 0
x02: 1
y00: 1
y01: 1
y02: 0

x00 XOR y00 -> z00
x00 AND y00 -> c00
x01 XOR y01 -> s01
x01 AND y01 -> a01
s01 XOR c00 -> z01
s01 AND c00 -> z02
a01 OR z02 -> c01
x02 XOR y02 -> s02
x02 AND y02 -> a02
s02 XOR c01 -> b01
s02 AND c01 -> b02
a02 OR b02 -> z03
`

func TestSolve_Examples(t *testing.T) {
	ans, err := Solve(small, config.Default())
	require.NoError(t, err)
	require.Equal(t, "4", ans.Part1)
	require.Empty(t, ans.Part2)

	ans, err = Solve(large, config.Default())
	require.NoError(t, err)
	require.Equal(t, "2024", ans.Part1)
}

func TestSimulate_Adder(t *testing.T) {
	c, err := Parse(adder)
	require.NoError(t, err)
	vals, err := c.Simulate()
	require.NoError(t, err)
	require.Equal(t, int64(5), Number(vals, "x"))
	require.Equal(t, int64(3), Number(vals, "y"))
	require.Equal(t, int64(8), Number(vals, "z"))

	wires, err := c.Miswired()
	require.NoError(t, err)
	require.Empty(t, wires)
}

func TestMiswired_Swapped(t *testing.T) {
	c, err := Parse(swapped)
	require.NoError(t, err)
	wires, err := c.Miswired()
	require.NoError(t, err)
	require.Equal(t, []string{"b01", "z02"}, wires)

	ans, err := Solve(swapped, config.Default())
	require.NoError(t, err)
	require.Equal(t, "b01,z02", ans.Part2)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("x00: 2\n\nx00 AND x00 -> z00\n")
	require.ErrorIs(t, err, ErrMalformed)
	_, err = Parse("x00: 1\n\nx00 NAND y00 -> z00\n")
	require.ErrorIs(t, err, ErrMalformed)
	_, err = Parse("x00: 1\ny00: 1\n\nx00 AND y00 -> z00\nx00 OR y00 -> z00\n")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestSimulate_Errors(t *testing.T) {
	c, err := Parse("x00: 1\n\nx00 AND w01 -> z00\n")
	require.NoError(t, err)
	_, err = c.Simulate()
	require.ErrorIs(t, err, ErrUndriven)

	c, err = Parse("x00: 1\n\nx00 AND b -> a\nx00 AND a -> b\n")
	require.NoError(t, err)
	_, err = c.Simulate()
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestSolve_LogsSkippedRepair(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupWriter(&buf, 2, true)
	t.Cleanup(func() { logging.SetupWriter(io.Discard, 0, true) })

	_, err := Solve(small, config.Default())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Circuit is not an adder")
	require.Contains(t, buf.String(), "component=day24")
}
