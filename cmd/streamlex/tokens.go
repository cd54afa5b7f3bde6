package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTokensCmd(opts *options) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "Tokenize C-like source",
		Long:  "Tokenize C-like source into identifiers, numbers, strings, punctuation and comments.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := opts.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer closeFn()

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			var counts [len(kindNames)]int
			err = lex(r, func(tok token) error {
				counts[tok.Kind]++
				if list {
					fmt.Fprintf(out, "%d\t%s\t%q\n", tok.Offset, tok.Kind, tok.Text)
				}
				return nil
			})
			if err != nil {
				return err
			}
			opts.dumpStats(r)
			if list {
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Kind", "Count"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)
			for k, n := range counts {
				if n > 0 {
					table.Append([]string{kind(k).String(), strconv.Itoa(n)})
				}
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print every token with its offset instead of a summary")
	return cmd
}
