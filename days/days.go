// SPDX-License-Identifier: MIT

// Package days links every day solver into the puzzle registry. Import it
// for its side effects.
package days

import (
	_ "github.com/katalvlaran/advent2024/days/day04"
	_ "github.com/katalvlaran/advent2024/days/day05"
	_ "github.com/katalvlaran/advent2024/days/day08"
	_ "github.com/katalvlaran/advent2024/days/day09"
	_ "github.com/katalvlaran/advent2024/days/day10"
	_ "github.com/katalvlaran/advent2024/days/day11"
	_ "github.com/katalvlaran/advent2024/days/day12"
	_ "github.com/katalvlaran/advent2024/days/day13"
	_ "github.com/katalvlaran/advent2024/days/day14"
	_ "github.com/katalvlaran/advent2024/days/day15"
	_ "github.com/katalvlaran/advent2024/days/day16"
	_ "github.com/katalvlaran/advent2024/days/day18"
	_ "github.com/katalvlaran/advent2024/days/day19"
	_ "github.com/katalvlaran/advent2024/days/day20"
	_ "github.com/katalvlaran/advent2024/days/day21"
	_ "github.com/katalvlaran/advent2024/days/day22"
	_ "github.com/katalvlaran/advent2024/days/day23"
	_ "github.com/katalvlaran/advent2024/days/day24"
	_ "github.com/katalvlaran/advent2024/days/day25"
)
