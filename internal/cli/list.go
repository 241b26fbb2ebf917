// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2024/puzzle"
	"github.com/katalvlaran/advent2024/samples"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !colorEnabled(cmd.OutOrStdout()) {
				pterm.DisableStyling()
			}
			data := pterm.TableData{{"Day", "Title", "Samples"}}
			for _, day := range puzzle.Days() {
				s, err := puzzle.Lookup(day)
				if err != nil {
					return err
				}
				list, err := samples.ForDay(day)
				if err != nil {
					return err
				}
				data = append(data, []string{strconv.Itoa(day), s.Title, strconv.Itoa(len(list))})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
