package review

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizforge/evalengine/internal/eval"
)

const fixtureYAML = `items:
  - id: capital
    question:
      type: multiple_choice
      correct_answer: Paris
      points: 10
    submitted: paris
  - id: city
    question:
      type: open_text
      correct_answer: Amsterdam
      points: 10
    submitted: Amsterdm
  - id: near-miss
    question:
      type: open_text
      correct_answer: Amsterdam
      points: 10
    submitted: Amsterdam Centraal
  - id: ordering
    question:
      type: sequence
      sequence: [First, Second, Third]
      points: 5
    submitted_order: [Second, First, Third]
  - id: essay
    question:
      type: essay
      points: 20
    submitted: a long answer
  - id: broken
    question:
      type: numerical
      points: 2
    submitted: "42"
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))
	return path
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(writeFixture(t))
	require.NoError(t, err)
	require.Len(t, f.Items, 6)
	require.Equal(t, "capital", f.Items[0].ID)
	require.Equal(t, eval.Sequence, f.Items[3].Question.Type)
	require.Equal(t, []string{"Second", "First", "Third"}, f.Items[3].SubmittedOrder)
}

func TestLoadFixtureAssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - question:\n      type: open_text\n      correct_answer: Oslo\n      points: 1\n    submitted: oslo\n"), 0o600))
	f, err := LoadFixture(path)
	require.NoError(t, err)
	require.Equal(t, "item-1", f.Items[0].ID)
}

func TestRunnerRun(t *testing.T) {
	f, err := LoadFixture(writeFixture(t))
	require.NoError(t, err)

	r := &Runner{Evaluator: eval.New(), Workers: 4}
	report, err := r.Run(context.Background(), f)
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 6)

	byID := map[string]Result{}
	for _, res := range report.Results {
		byID[res.Item.ID] = res
	}

	require.True(t, byID["capital"].Verdict.Correct)
	require.Equal(t, 10, byID["capital"].Verdict.Points)

	require.True(t, byID["city"].Verdict.Correct)

	nm := byID["near-miss"]
	require.False(t, nm.Verdict.Correct)
	require.True(t, nm.NearMiss)
	require.GreaterOrEqual(t, nm.Similarity, 0.8)

	require.True(t, byID["ordering"].Verdict.Correct)
	require.Equal(t, 1, byID["ordering"].Verdict.Points)

	require.True(t, byID["essay"].Verdict.NeedsReview)

	require.NotEmpty(t, byID["broken"].Err)

	m := report.Metrics
	require.Equal(t, 6, m.Total)
	require.Equal(t, 3, m.Correct)
	require.Equal(t, 1, m.Incorrect)
	require.Equal(t, 1, m.NeedsReview)
	require.Equal(t, 1, m.Errors)
	require.Equal(t, 1, m.NearMisses)
}

func TestRunnerRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]Item, 100)
	for i := range items {
		items[i] = Item{
			Question:  eval.Question{Type: eval.OpenText, CorrectAnswer: "Amsterdam", Points: 1},
			Submitted: "Amsterdam",
		}
	}
	r := &Runner{Evaluator: eval.New(), Workers: 2}
	_, err := r.Run(ctx, Fixture{Items: items})
	require.ErrorIs(t, err, context.Canceled)
}
