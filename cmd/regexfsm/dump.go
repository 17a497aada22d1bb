package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"regexfsm/internal/regexlib"
)

func newDumpCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "dump <pattern>",
		Short: "Write Graphviz .gv files for every automaton stage of pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regexlib.Compile(args[0])
			if err != nil {
				return errors.Wrap(err, "compile pattern")
			}
			if err := re.DumpGraphviz(outDir); err != nil {
				return err
			}
			counts := re.StateCounts()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote graphviz files to %s (states: epsilon-nfa=%d nfa=%d dfa=%d minimized-dfa=%d)\n",
				outDir, counts[0], counts[1], counts[2], counts[3])
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "graphviz", "output directory")
	return cmd
}
