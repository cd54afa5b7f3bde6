package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/streamlex"
	"github.com/coregx/streamlex/predicate"
	"github.com/coregx/streamlex/stamp"
)

var notNewline = predicate.Not(predicate.Newline)

func newLinesCmd(opts *options) *cobra.Command {
	var number, withStamp bool
	cmd := &cobra.Command{
		Use:   "lines [FILE]",
		Short: "Print lines, optionally numbered and time stamped",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := opts.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer closeFn()

			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()

			n, err := eachLine(r, func(i int, line string) error {
				if withStamp {
					fmt.Fprintf(w, "%s ", stamp.Now())
				}
				if number {
					fmt.Fprintf(w, "%6d\t", i)
				}
				fmt.Fprintln(w, line)
				if opts.follow {
					return w.Flush()
				}
				return nil
			})
			if err != nil {
				return err
			}
			opts.dumpStats(r)
			opts.logger.Debug("lines done", "lines", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&number, "number", "n", false, "Number the lines")
	cmd.Flags().BoolVarP(&withStamp, "stamp", "s", false, "Prefix each line with the time it was read")
	return cmd
}

// eachLine calls fn with every line, numbered from 1 and without its line
// terminator. The line string is only valid during the call.
func eachLine(r *streamlex.Reader, fn func(i int, line string) error) (int, error) {
	n := 0
	for {
		line, err := r.TakeWhile(notNewline)
		if err != nil {
			return n, err
		}
		if !line.HasNext && line.Span.IsEmpty() {
			return n, nil
		}
		n++
		if err := fn(n, strings.TrimSuffix(line.Span.String(), "\r")); err != nil {
			return n, err
		}
		if line.HasNext {
			if _, _, err := r.Next(); err != nil {
				return n, err
			}
		}
		r.Compact()
	}
}
