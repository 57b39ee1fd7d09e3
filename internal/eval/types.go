// Package eval decides whether a submitted quiz answer is correct and how
// many points it earns. It is a pure function of (question, submission):
// no storage, no sessions, no shared state. Transport and persistence live
// with the callers.
package eval

import (
	"errors"
	"fmt"
)

// QuestionType selects the scoring rule.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	OpenText       QuestionType = "open_text"
	Sequence       QuestionType = "sequence"
	TrueFalse      QuestionType = "true_false"
	Numerical      QuestionType = "numerical"
	Image          QuestionType = "image"
	Audio          QuestionType = "audio"
	Video          QuestionType = "video"
)

// Question is a minimal view of a question needed for scoring. Only the
// fields relevant to Type are expected to be populated.
type Question struct {
	Type             QuestionType `json:"type" yaml:"type"`
	CorrectAnswer    string       `json:"correct_answer,omitempty" yaml:"correct_answer,omitempty"`
	Sequence         []string     `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	NumericAnswer    *float64     `json:"numeric_answer,omitempty" yaml:"numeric_answer,omitempty"`
	NumericTolerance *float64     `json:"numeric_tolerance,omitempty" yaml:"numeric_tolerance,omitempty"`
	Points           int          `json:"points" yaml:"points"`
}

// Verdict is the outcome of evaluating a single submission. NeedsReview is
// set when no automatic scoring rule exists for the question type; Correct
// is meaningless in that case.
type Verdict struct {
	Correct     bool `json:"correct"`
	Points      int  `json:"points"`
	NeedsReview bool `json:"needs_review,omitempty"`
}

// ErrInvalidQuestionSpec reports a question missing a field required by its
// own type. Preconditions are the caller's job; this is the detect-don't-
// mis-score guard.
var ErrInvalidQuestionSpec = errors.New("invalid question spec")

func errInvalidSpec(t QuestionType, field string) error {
	return fmt.Errorf("%w: %s question missing %s", ErrInvalidQuestionSpec, t, field)
}
