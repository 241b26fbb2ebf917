// SPDX-License-Identifier: MIT

// Package config loads run settings and per-day puzzle constants.
//
// Layers, later ones win:
//
//  1. built-in defaults (Defaults)
//  2. a TOML or YAML file: the --config path, else ./advent.toml, else
//     $XDG_CONFIG_HOME/advent/advent.toml
//  3. ADVENT_* environment variables; "__" separates nesting levels, so
//     ADVENT_DAY14__WIDTH=11 sets day14.width and ADVENT_INPUT_DIR sets input_dir
//  4. explicit overrides (command-line flags, sample catalogue entries)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the config file looked up when no explicit path is given.
const FileName = "advent.toml"

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "ADVENT_"

var (
	// ErrConfigFile indicates an explicit config file that could not be read or parsed.
	ErrConfigFile = errors.New("config: cannot load config file")

	// ErrInvalid indicates a setting outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the fully resolved configuration.
type Config struct {
	InputDir     string `koanf:"input_dir" toml:"input_dir"`
	DebugDir     string `koanf:"debug_dir" toml:"debug_dir"`
	InputPattern string `koanf:"input_pattern" toml:"input_pattern"`

	Day11 Day11 `koanf:"day11" toml:"day11"`
	Day13 Day13 `koanf:"day13" toml:"day13"`
	Day14 Day14 `koanf:"day14" toml:"day14"`
	Day18 Day18 `koanf:"day18" toml:"day18"`
	Day20 Day20 `koanf:"day20" toml:"day20"`
	Day21 Day21 `koanf:"day21" toml:"day21"`
	Day22 Day22 `koanf:"day22" toml:"day22"`
}

// Day11 holds the blink counts for both parts.
type Day11 struct {
	Blinks1 int `koanf:"blinks1" toml:"blinks1"`
	Blinks2 int `koanf:"blinks2" toml:"blinks2"`
}

// Day13 holds the prize offset applied in part 2.
type Day13 struct {
	Offset int64 `koanf:"offset" toml:"offset"`
}

// Day14 holds the robot floor size and the part 1 duration.
type Day14 struct {
	Width   int `koanf:"width" toml:"width"`
	Height  int `koanf:"height" toml:"height"`
	Seconds int `koanf:"seconds" toml:"seconds"`
}

// Day18 holds the memory space size and the number of bytes fallen in part 1.
type Day18 struct {
	Size   int `koanf:"size" toml:"size"`
	Fallen int `koanf:"fallen" toml:"fallen"`
}

// Day20 holds the cheat lengths and the minimum picoseconds saved.
type Day20 struct {
	MinSaving  int `koanf:"min_saving" toml:"min_saving"`
	ShortCheat int `koanf:"short_cheat" toml:"short_cheat"`
	LongCheat  int `koanf:"long_cheat" toml:"long_cheat"`
}

// Day21 holds the number of robot-operated directional keypads per part.
type Day21 struct {
	Robots1 int `koanf:"robots1" toml:"robots1"`
	Robots2 int `koanf:"robots2" toml:"robots2"`
}

// Day22 holds the number of secret evolutions per buyer.
type Day22 struct {
	Rounds int `koanf:"rounds" toml:"rounds"`
}

// Defaults returns the built-in settings as a nested map.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"input_dir":         "data",
		"debug_dir":         "",
		"input_pattern":     "input%d.txt",
		"day11.blinks1":     25,
		"day11.blinks2":     75,
		"day13.offset":      int64(10000000000000),
		"day14.width":       101,
		"day14.height":      103,
		"day14.seconds":     100,
		"day18.size":        71,
		"day18.fallen":      1024,
		"day20.min_saving":  100,
		"day20.short_cheat": 2,
		"day20.long_cheat":  20,
		"day21.robots1":     2,
		"day21.robots2":     25,
		"day22.rounds":      2000,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := New(nil)
	if err != nil {
		// the built-in defaults always validate
		panic(err)
	}
	return cfg
}

// New resolves defaults plus overrides only, ignoring files and the
// environment. Keys use dotted paths ("day14.width").
func New(overrides map[string]interface{}) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load overrides: %w", err)
		}
	}
	return unmarshal(k)
}

// Load resolves every layer. path may be empty, in which case the default
// locations are tried and a missing file is not an error.
func Load(path string, overrides map[string]interface{}) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = discover()
	} else if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	return unmarshal(k)
}

// envKey maps ADVENT_DAY14__WIDTH to day14.width.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// discover returns the first existing default config file, or "".
func discover() string {
	for _, p := range []string{FileName, filepath.Join(xdg.ConfigHome, "advent", FileName)} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// parserFor picks the koanf parser from the file extension; TOML otherwise.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func unmarshal(k *koanf.Koanf) (Config, error) {
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every numeric setting is usable.
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"input_pattern", strings.Contains(c.InputPattern, "%d")},
		{"day11.blinks1", c.Day11.Blinks1 >= 0},
		{"day11.blinks2", c.Day11.Blinks2 >= 0},
		{"day13.offset", c.Day13.Offset >= 0},
		{"day14.width", c.Day14.Width > 0},
		{"day14.height", c.Day14.Height > 0},
		{"day14.seconds", c.Day14.Seconds >= 0},
		{"day18.size", c.Day18.Size > 0},
		{"day18.fallen", c.Day18.Fallen >= 0},
		{"day20.min_saving", c.Day20.MinSaving > 0},
		{"day20.short_cheat", c.Day20.ShortCheat >= 2},
		{"day20.long_cheat", c.Day20.LongCheat >= 2},
		{"day21.robots1", c.Day21.Robots1 >= 0},
		{"day21.robots2", c.Day21.Robots2 >= 0},
		{"day22.rounds", c.Day22.Rounds > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}
	return nil
}

// InputPath returns the default input file for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
