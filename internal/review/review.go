// Package review runs recorded (question, submission) pairs through the
// evaluation engine in bulk. It exists for admins tuning answer keys: it
// surfaces near misses - rejected text answers that were close to the
// reference - alongside aggregate scoring numbers.
package review

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizforge/evalengine/internal/eval"
	"github.com/quizforge/evalengine/pkg/similarity"
)

// A rejected text answer at or above this similarity is worth human review.
const nearMissThreshold = 0.8

// Result is the evaluated outcome of one fixture item.
type Result struct {
	Item       Item          `json:"item"`
	Verdict    eval.Verdict  `json:"verdict"`
	Err        string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
	NearMiss   bool          `json:"near_miss,omitempty"`
	Similarity float64       `json:"similarity,omitempty"`
}

// Metrics aggregates a run.
type Metrics struct {
	Total       int           `json:"total"`
	Correct     int           `json:"correct"`
	Incorrect   int           `json:"incorrect"`
	NeedsReview int           `json:"needs_review"`
	NearMisses  int           `json:"near_misses"`
	Errors      int           `json:"errors"`
	AvgLatency  time.Duration `json:"avg_latency"`
}

// Report is the full outcome of one review run.
type Report struct {
	RunID      string    `json:"run_id"`
	Results    []Result  `json:"results"`
	Metrics    Metrics   `json:"metrics"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Runner evaluates fixture items concurrently. Every evaluation is
// independent, so the only coordination is the worker pool itself.
type Runner struct {
	Evaluator eval.Evaluator
	Workers   int
	Logger    *zap.Logger
}

func (r *Runner) Run(ctx context.Context, fixture Fixture) (Report, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	started := time.Now()
	results := make([]Result, len(fixture.Items))

	itemCh := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range itemCh {
				results[i] = r.evaluateItem(ctx, fixture.Items[i])
			}
		}()
	}

	for i := range fixture.Items {
		select {
		case <-ctx.Done():
			close(itemCh)
			wg.Wait()
			return Report{}, ctx.Err()
		case itemCh <- i:
		}
	}
	close(itemCh)
	wg.Wait()

	report := Report{
		RunID:      uuid.NewString(),
		Results:    results,
		Metrics:    calculateMetrics(results),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	logger.Info("review run finished",
		zap.String("run_id", report.RunID),
		zap.Int("total", report.Metrics.Total),
		zap.Int("correct", report.Metrics.Correct),
		zap.Int("near_misses", report.Metrics.NearMisses),
	)
	return report, nil
}

func (r *Runner) evaluateItem(ctx context.Context, item Item) Result {
	start := time.Now()
	res := Result{Item: item}

	verdict, err := r.Evaluator.Evaluate(ctx, item.Question, item.Submission())
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Verdict = verdict

	if isFuzzyScored(item.Question.Type) {
		res.Similarity = similarity.JaroWinkler(
			strings.ToLower(strings.TrimSpace(item.Submitted)),
			strings.ToLower(strings.TrimSpace(item.Question.CorrectAnswer)),
		)
		res.NearMiss = !verdict.Correct && res.Similarity >= nearMissThreshold
	}
	return res
}

func isFuzzyScored(t eval.QuestionType) bool {
	switch t {
	case eval.OpenText, eval.Image, eval.Audio, eval.Video:
		return true
	default:
		return false
	}
}

func calculateMetrics(results []Result) Metrics {
	m := Metrics{Total: len(results)}
	var total time.Duration
	for _, res := range results {
		total += res.Duration
		switch {
		case res.Err != "":
			m.Errors++
		case res.Verdict.NeedsReview:
			m.NeedsReview++
		case res.Verdict.Correct:
			m.Correct++
		default:
			m.Incorrect++
		}
		if res.NearMiss {
			m.NearMisses++
		}
	}
	if len(results) > 0 {
		m.AvgLatency = total / time.Duration(len(results))
	}
	return m
}
