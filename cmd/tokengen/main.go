// Command tokengen generates an enumerated token type and its matching
// pattern from a YAML definition.
//
// Usage:
//
//	//go:generate go run ../../cmd/tokengen -o punct_gen.go punct.yaml
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:          "tokengen [flags] DEFINITION",
		Short:        "Generate an enumerated token set",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			def, err := Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			src, err := Generate(def, filepath.Base(args[0]))
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
