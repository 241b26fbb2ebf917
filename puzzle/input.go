// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/advent2024/config"
)

// Load reads the input for day: override when non-empty, otherwise the
// configured default path.
func Load(cfg config.Config, day int, override string) (string, error) {
	path := override
	if path == "" {
		path = cfg.InputPath(day)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("puzzle: read %s: %w", path, err)
	}
	return string(data), nil
}

// Lines splits input into lines, dropping carriage returns, surrounding
// blank lines and trailing spaces. Blank input yields ErrEmptyInput.
func Lines(input string) ([]string, error) {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if input == "" {
		return nil, ErrEmptyInput
	}
	lines := strings.Split(input, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t\r")
	}
	return lines, nil
}

// Blocks splits input into groups of lines separated by blank lines.
func Blocks(input string) ([][]string, error) {
	lines, err := Lines(input)
	if err != nil {
		return nil, err
	}
	var out [][]string
	var cur []string
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, ln)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out, nil
}

// WriteArtifacts stores every artefact of a under dir, creating it if
// needed, and returns the written paths sorted.
func WriteArtifacts(dir string, a Answer) ([]string, error) {
	if dir == "" || len(a.Artifacts) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("puzzle: create debug dir: %w", err)
	}
	var paths []string
	for name, body := range a.Artifacts {
		p := filepath.Join(dir, filepath.Base(name))
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			return nil, fmt.Errorf("puzzle: write artefact %s: %w", name, err)
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}
