package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"regexfsm/internal/regexlib"
)

func newMatchCmd() *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report whether input is fully matched by pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regexlib.Compile(args[0])
			if err != nil {
				return errors.Wrap(err, "compile pattern")
			}

			var matched bool
			if stage == "" {
				matched = re.Match(args[1])
			} else {
				st, err := parseStage(stage)
				if err != nil {
					return err
				}
				matched = re.MatchStage(st, args[1])
			}

			if matched {
				fmt.Fprintln(cmd.OutOrStdout(), "match")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "pipeline stage to match against: epsilon-nfa, nfa, dfa, minimized-dfa (default: minimized-dfa)")
	return cmd
}

func parseStage(name string) (regexlib.Stage, error) {
	switch name {
	case "epsilon-nfa":
		return regexlib.StageEpsilonNFA, nil
	case "nfa":
		return regexlib.StageNFA, nil
	case "dfa":
		return regexlib.StageDFA, nil
	case "minimized-dfa":
		return regexlib.StageMinimizedDFA, nil
	default:
		return 0, fmt.Errorf("unknown stage %q", name)
	}
}
