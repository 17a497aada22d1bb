package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"regexfsm/internal/batch"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Run a `pattern => input => yes|no` test-vector file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read %q", args[0])
			}
			cases, err := batch.Parse(string(data))
			if err != nil {
				return errors.Wrap(err, "parse batch file")
			}
			log.WithField("cases", len(cases)).Debug("regexfsm: running batch")

			results := batch.Run(cases)
			failures := 0
			for i, r := range results {
				switch {
				case r.Err != nil:
					failures++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %d: %s => %s: compile error: %v\n", i+1, r.Pattern, r.Input, r.Err)
				case !r.Matches:
					failures++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %d: %s => %s: got %v, want %v\n", i+1, r.Pattern, r.Input, r.Got, r.Want)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "ok   %d: %s => %s\n", i+1, r.Pattern, r.Input)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d passed\n", len(results)-failures, len(results))
			if failures > 0 {
				return fmt.Errorf("%d test vector(s) failed", failures)
			}
			return nil
		},
	}
	return cmd
}
