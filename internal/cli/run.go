// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2024/logging"
	"github.com/katalvlaran/advent2024/puzzle"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		inputPath string
		all       bool
	)
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: MsgRunShort,
		Example: `  advent run 16
  advent run day18 --input ./my18.txt
  advent run --all --debug-dir ./debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := selectDays(args, all)
			if err != nil {
				return err
			}
			if inputPath != "" && len(days) != 1 {
				return errors.New(MsgInputOneDay)
			}
			out := newStream(cmd.OutOrStdout())
			diag := newStream(cmd.ErrOrStderr())
			for _, day := range days {
				if err := a.runDay(out, diag, day, inputPath); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the input from this file instead of the input directory")
	cmd.Flags().BoolVar(&all, "all", false, "run every registered day")
	return cmd
}

// stream pairs a writer with the palette matching its terminal.
type stream struct {
	w io.Writer
	p palette
}

func newStream(w io.Writer) stream {
	return stream{w: w, p: newPalette(w)}
}

// runDay solves one day and writes its artefacts. Only the answer lines go
// to out; the day header and artefact paths go to diag.
func (a *app) runDay(out, diag stream, day int, inputPath string) error {
	solver, err := puzzle.Lookup(day)
	if err != nil {
		return err
	}
	input, err := puzzle.Load(a.cfg, day, inputPath)
	if err != nil {
		return err
	}
	ans, err := puzzle.Run(solver, input, a.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(diag.w, diag.p.header.Render(fmt.Sprintf(MsgDayHeader, solver.Day, solver.Title)))
	for _, ln := range ans.Lines() {
		fmt.Fprintln(out.w, out.p.answer.Render(ln))
	}

	paths, err := puzzle.WriteArtifacts(a.cfg.DebugDir, ans)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(diag.w, diag.p.dim.Render(fmt.Sprintf(MsgArtifact, path)))
	}
	if len(paths) > 0 {
		logger := logging.Get("cli")
		logger.Info().Int("day", day).Strs("paths", paths).Msg("Artefacts written")
	}
	return nil
}

// selectDays parses day arguments, or returns every registered day for all.
func selectDays(args []string, all bool) ([]int, error) {
	if all {
		return puzzle.Days(), nil
	}
	if len(args) == 0 {
		return nil, errors.New(MsgNoDays)
	}
	days := make([]int, 0, len(args))
	for _, arg := range args {
		d, err := puzzle.ParseDay(arg)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
