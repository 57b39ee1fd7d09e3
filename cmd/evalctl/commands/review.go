package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/quizforge/evalengine/internal/review"
)

func newReviewCommand() *cobra.Command {
	var (
		fixturePath string
		workers     int
		format      string
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Evaluate a fixture of recorded submissions and report near misses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixturePath == "" {
				return errors.New("fixture path is required")
			}
			formatResolved := format
			if formatResolved == "" {
				formatResolved = appConfig.Format
			}
			if formatResolved == "" {
				formatResolved = "table"
			}
			workerCount := workers
			if workerCount <= 0 {
				workerCount = appConfig.Workers
			}
			if workerCount <= 0 {
				workerCount = 1
			}

			fixture, err := review.LoadFixture(fixturePath)
			if err != nil {
				return err
			}

			runner := &review.Runner{
				Evaluator: buildEvaluator(),
				Workers:   workerCount,
				Logger:    logger,
			}
			report, err := runner.Run(cmd.Context(), fixture)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			switch formatResolved {
			case "table":
				return writeTableReport(writer, report)
			case "json":
				enc := json.NewEncoder(writer)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			default:
				return fmt.Errorf("unknown format: %s", formatResolved)
			}
		},
	}

	cmd.Flags().StringVarP(&fixturePath, "fixtures", "f", "", "path to fixture YAML file")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of workers")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	return cmd
}

func writeTableReport(w io.Writer, report review.Report) error {
	items := tablewriter.NewWriter(w)
	items.Header([]string{"ID", "Type", "Correct", "Points", "Near miss", "Error"})
	for _, res := range report.Results {
		nearMiss := ""
		if res.NearMiss {
			nearMiss = fmt.Sprintf("jw=%.2f", res.Similarity)
		}
		items.Append([]string{
			res.Item.ID,
			string(res.Item.Question.Type),
			verdictLabel(res),
			fmt.Sprintf("%d", res.Verdict.Points),
			nearMiss,
			res.Err,
		})
	}
	if err := items.Render(); err != nil {
		return err
	}

	m := report.Metrics
	summary := tablewriter.NewWriter(w)
	summary.Header([]string{"Metric", "Value"})
	summary.Append([]string{"Run ID", report.RunID})
	summary.Append([]string{"Total", fmt.Sprintf("%d", m.Total)})
	summary.Append([]string{"Correct", fmt.Sprintf("%d", m.Correct)})
	summary.Append([]string{"Incorrect", fmt.Sprintf("%d", m.Incorrect)})
	summary.Append([]string{"Needs review", fmt.Sprintf("%d", m.NeedsReview)})
	summary.Append([]string{"Near misses", fmt.Sprintf("%d", m.NearMisses)})
	summary.Append([]string{"Errors", fmt.Sprintf("%d", m.Errors)})
	summary.Append([]string{"Avg latency", m.AvgLatency.String()})
	return summary.Render()
}

func verdictLabel(res review.Result) string {
	switch {
	case res.Err != "":
		return "error"
	case res.Verdict.NeedsReview:
		return "review"
	case res.Verdict.Correct:
		return "yes"
	default:
		return "no"
	}
}
