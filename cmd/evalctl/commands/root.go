// Package commands implements the evalctl CLI: admin tooling for exercising
// the answer evaluation engine outside a live quiz session.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizforge/evalengine/internal/eval"
	"github.com/quizforge/evalengine/internal/normalize"
)

var (
	appConfig  Config
	logger     *zap.Logger
	configPath string
	verbose    bool
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "evalctl",
		Short: "Answer evaluation engine CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			appConfig = cfg

			if verbose {
				logger, _ = zap.NewDevelopment()
			} else {
				logger, _ = zap.NewProduction()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	root.AddCommand(newMatchCommand())
	root.AddCommand(newSimilarityCommand())
	root.AddCommand(newReviewCommand())

	return root
}

// buildNormalizer picks the configured normalizer: the HTTP service when a
// URL is set, the local one otherwise.
func buildNormalizer() normalize.Normalizer {
	if appConfig.NormalizerURL != "" {
		return normalize.NewHTTPNormalizer(appConfig.NormalizerURL,
			normalize.WithTimeout(appConfig.normalizerTimeout()),
			normalize.WithRetryAttempts(uint(appConfig.NormalizerRetries)),
			normalize.WithLanguage(appConfig.Language),
			normalize.WithLogger(logger),
		)
	}
	return normalize.NewLocal(appConfig.Language)
}

func buildEvaluator() eval.Evaluator {
	return eval.New(eval.WithNormalizer(buildNormalizer()))
}
