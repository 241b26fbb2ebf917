// SPDX-License-Identifier: MIT

package cli

// Command descriptions and output formats.
const (
	MsgRootShort = "Advent of Code 2024 puzzle solutions"
	MsgRootLong  = `advent solves Advent of Code 2024 puzzles from their input files.

Inputs are read from <input_dir>/input<N>.txt (see "advent config"), answers
are printed as "part 1: X" and "part 2: Y", and debug artefacts such as the
day 14 tree frame are written when a debug directory is set.`

	MsgRunShort      = "Solve one or more days"
	MsgCheckShort    = "Check solvers against the official samples"
	MsgListShort     = "List the available days"
	MsgDescribeShort = "Show the puzzle notes of a day"
	MsgConfigShort   = "Print the effective configuration as TOML"
	MsgVersionShort  = "Print version information"

	MsgDayHeader    = "Day %d: %s"
	MsgArtifact     = "  wrote %s"
	MsgCheckPass    = "PASS %s"
	MsgCheckFail    = "FAIL %s: %v"
	MsgCheckSummary = "%d passed, %d failed\n"
	MsgNoDays       = "no days given; pass day numbers or --all"
	MsgInputOneDay  = "--input needs exactly one day"
)
