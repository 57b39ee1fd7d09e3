package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizforge/evalengine/pkg/similarity"
)

func newSimilarityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Print the raw similarity scores for a string pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := args[0], args[1]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "jaro-winkler:         %.4f\n", similarity.JaroWinkler(a, b))
			fmt.Fprintf(out, "levenshtein distance: %d\n", similarity.Levenshtein(a, b))
			fmt.Fprintf(out, "levenshtein ratio:    %.4f\n", similarity.Ratio(a, b))
			return nil
		},
	}
}
