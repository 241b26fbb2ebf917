// SPDX-License-Identifier: MIT

// Package day09 solves disk fragmentation: compact a dense disk map block by
// block, then file by file, and report the checksum.
package day09

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/puzzle"
)

// ErrBadDigit is returned for disk map characters other than 0-9.
var ErrBadDigit = errors.New("day09: disk map must contain digits only")

// free marks an empty block.
const free = -1

// Solver registers day 9.
var Solver = puzzle.Solver{
	Day:   9,
	Title: "Disk Fragmenter",
	Notes: `The disk map alternates file lengths and free-space lengths; file IDs count up from 0.

* **Part 1:** move single blocks from the end into the leftmost gap.
* **Part 2:** move whole files, highest ID first, into the leftmost gap that fits.

Checksum = sum of position × file ID.`,
	Solve: Solve,
}

func init() { puzzle.Register(Solver) }

// span is a run of blocks [start, start+size).
type span struct {
	start, size int
}

// Disk is the expanded block layout plus the file and gap spans.
type Disk struct {
	Blocks []int
	files  []span
	gaps   []span
}

// Parse expands the dense disk map.
func Parse(input string) (*Disk, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, puzzle.ErrEmptyInput
	}
	d := &Disk{}
	for i, ch := range s {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadDigit, ch, i)
		}
		n := int(ch - '0')
		sp := span{start: len(d.Blocks), size: n}
		id := free
		if i%2 == 0 {
			id = i / 2
			d.files = append(d.files, sp)
		} else if n > 0 {
			d.gaps = append(d.gaps, sp)
		}
		for k := 0; k < n; k++ {
			d.Blocks = append(d.Blocks, id)
		}
	}
	return d, nil
}

// CompactBlocks moves blocks one at a time from the end into the leftmost
// free block and returns the new layout.
func (d *Disk) CompactBlocks() []int {
	out := append([]int(nil), d.Blocks...)
	i, j := 0, len(out)-1
	for {
		for i < j && out[i] != free {
			i++
		}
		for i < j && out[j] == free {
			j--
		}
		if i >= j {
			return out
		}
		out[i], out[j] = out[j], free
	}
}

// CompactFiles moves each file once, highest ID first, into the leftmost gap
// that lies before it and is large enough.
func (d *Disk) CompactFiles() []int {
	out := append([]int(nil), d.Blocks...)
	gaps := append([]span(nil), d.gaps...)
	for id := len(d.files) - 1; id >= 0; id-- {
		f := d.files[id]
		for gi := range gaps {
			g := &gaps[gi]
			if g.start >= f.start {
				break
			}
			if g.size < f.size {
				continue
			}
			for k := 0; k < f.size; k++ {
				out[g.start+k] = id
				out[f.start+k] = free
			}
			g.start += f.size
			g.size -= f.size
			break
		}
	}
	return out
}

// Checksum sums position × file ID over occupied blocks.
func Checksum(blocks []int) int64 {
	var sum int64
	for i, id := range blocks {
		if id != free {
			sum += int64(i) * int64(id)
		}
	}
	return sum
}

// Solve compacts the disk both ways.
func Solve(input string, _ config.Config) (puzzle.Answer, error) {
	d, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: puzzle.Itoa(Checksum(d.CompactBlocks())),
		Part2: puzzle.Itoa(Checksum(d.CompactFiles())),
	}, nil
}
