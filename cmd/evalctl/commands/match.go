package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quizforge/evalengine/internal/eval"
)

func newMatchCommand() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "match <submitted> <correct>",
		Short: "Run the fuzzy matcher on one answer pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher := eval.NewMatcher(buildNormalizer())
			ok, trace := matcher.MatchTrace(cmd.Context(), args[0], args[1])

			if explain {
				for _, sr := range trace {
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", sr.Stage, sr.Decision)
				}
			}
			if ok {
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "match")
			} else {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), "no match")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "print the per-stage decision trace")
	return cmd
}
