// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2024/puzzle"
	"github.com/katalvlaran/advent2024/samples"
)

// ErrChecksFailed is returned by "advent check" when any sample fails.
var ErrChecksFailed = errors.New("sample checks failed")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: MsgCheckShort,
		Long: `Check solves every embedded official sample and compares the answers with the
published ones. Without arguments all days are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := selectDays(args, len(args) == 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := newPalette(out)

			var passed, failed int
			for _, day := range days {
				solver, err := puzzle.Lookup(day)
				if err != nil {
					return err
				}
				list, err := samples.ForDay(day)
				if err != nil {
					return err
				}
				for _, s := range list {
					if _, err := samples.Check(solver, s); err != nil {
						failed++
						fmt.Fprintln(out, p.fail.Render(fmt.Sprintf(MsgCheckFail, s, err)))
						continue
					}
					passed++
					fmt.Fprintln(out, p.pass.Render(fmt.Sprintf(MsgCheckPass, s)))
				}
			}
			fmt.Fprintf(out, MsgCheckSummary, passed, failed)
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, passed+failed)
			}
			return nil
		},
	}
}
