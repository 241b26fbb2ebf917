// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2024/puzzle"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <day>",
		Short: MsgDescribeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}
			s, err := puzzle.Lookup(day)
			if err != nil {
				return err
			}
			doc := fmt.Sprintf("# Day %d: %s\n\n%s\n", s.Day, s.Title, s.Notes)
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(cmd.OutOrStdout(), doc))
			return nil
		},
	}
}

// renderMarkdown renders doc for w, falling back to the raw text when the
// renderer fails.
func renderMarkdown(w io.Writer, doc string) string {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if colorEnabled(w) {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath("notty"))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return doc
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return doc
	}
	return out
}
