// SPDX-License-Identifier: MIT

// Package cli implements the advent command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2024/config"
	"github.com/katalvlaran/advent2024/logging"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app carries the global flags and the resolved configuration.
type app struct {
	verbosity  int
	configPath string
	debugDir   string
	inputDir   string
	cfg        config.Config
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "advent",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupWriter(cmd.ErrOrStderr(), a.verbosity, !colorEnabled(cmd.ErrOrStderr()))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./advent.toml, then $XDG_CONFIG_HOME/advent/advent.toml)")
	rootCmd.PersistentFlags().StringVar(&a.debugDir, "debug-dir", "", "write debug artefacts into this directory")
	rootCmd.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "directory holding input<N>.txt files")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig resolves the configuration with flag values as the top layer.
func (a *app) loadConfig() error {
	overrides := map[string]interface{}{}
	if a.debugDir != "" {
		overrides["debug_dir"] = a.debugDir
	}
	if a.inputDir != "" {
		overrides["input_dir"] = a.inputDir
	}
	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log.Debug().Str("input_dir", cfg.InputDir).Str("debug_dir", cfg.DebugDir).Msg("Configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advent version %s\n", Version)
		},
	}
}
