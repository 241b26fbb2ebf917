// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"time"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/logging"
)

// Run solves input with s, logging the duration, and wraps failures with
// the day number.
func Run(s Solver, input string, cfg config.Config) (Answer, error) {
	logger := logging.Get("puzzle").With().Int("day", s.Day).Logger()
	start := time.Now()
	defer logging.LogDuration(logger, start, "solve")

	logger.Info().Int("bytes", len(input)).Msg("Solving")
	ans, err := s.Solve(input, cfg)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", s.Day, err)
	}
	return ans, nil
}
