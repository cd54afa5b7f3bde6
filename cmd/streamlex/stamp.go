package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/streamlex/stamp"
)

func newStampCmd() *cobra.Command {
	var precise, human, dateOnly, timeOnly bool
	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Print the current time as a compact stamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !human && !dateOnly && !timeOnly {
				s := stamp.Now()
				if precise {
					s = stamp.NowPrecise()
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
				return err
			}
			if precise {
				return errors.New("--precise only applies to the fixed UTC+8 stamp")
			}
			if dateOnly && timeOnly {
				return errors.New("--date-only and --time-only are mutually exclusive")
			}
			layout := stamp.DateTime
			switch {
			case dateOnly:
				layout = stamp.DateOnly
			case timeOnly:
				layout = stamp.TimeOnly
			}
			layout.Human = human
			_, err := fmt.Fprintln(cmd.OutOrStdout(), layout.Now())
			return err
		},
	}
	cmd.Flags().BoolVarP(&precise, "precise", "p", false, "Include sub-millisecond digits")
	cmd.Flags().BoolVarP(&human, "human", "H", false, "Use the readable local time form")
	cmd.Flags().BoolVar(&dateOnly, "date-only", false, "Print only the local date")
	cmd.Flags().BoolVar(&timeOnly, "time-only", false, "Print only the local time")
	return cmd
}
