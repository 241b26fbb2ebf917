// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/advent2024/internal/cli"

	// Register every day solver.
	_ "github.com/katalvlaran/advent2024/days"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
