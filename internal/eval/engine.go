package eval

import (
	"context"
	"strings"

	"github.com/quizforge/evalengine/internal/normalize"
)

// Strategy scores a single question type.
type Strategy interface {
	Evaluate(ctx context.Context, q Question, response interface{}) (Verdict, error)
}

// Evaluator routes by question type to the correct Strategy.
type Evaluator interface {
	Evaluate(ctx context.Context, q Question, response interface{}) (Verdict, error)
}

type defaultEvaluator struct {
	strategies map[QuestionType]Strategy
}

func (e *defaultEvaluator) Evaluate(ctx context.Context, q Question, response interface{}) (Verdict, error) {
	s, ok := e.strategies[q.Type]
	if !ok {
		// Manual scoring path: no automatic rule for this type.
		return Verdict{NeedsReview: true}, nil
	}
	return s.Evaluate(ctx, q, response)
}

// Evaluator options

type Option func(*config)

type config struct {
	Normalizer normalize.Normalizer
}

// WithNormalizer wires a richer text normalizer into the fuzzy matcher.
func WithNormalizer(n normalize.Normalizer) Option {
	return func(c *config) { c.Normalizer = n }
}

// New installs the built-in strategies.
func New(opts ...Option) Evaluator {
	cfg := &config{
		Normalizer: normalize.Fallback(),
	}
	for _, o := range opts {
		o(cfg)
	}
	matcher := NewMatcher(cfg.Normalizer)
	fuzzy := fuzzyStrategy{matcher: matcher}
	return &defaultEvaluator{
		strategies: map[QuestionType]Strategy{
			MultipleChoice: exactStrategy{},
			TrueFalse:      exactStrategy{},
			Numerical:      numericStrategy{},
			Sequence:       sequenceStrategy{},
			OpenText:       fuzzy,
			Image:          fuzzy,
			Audio:          fuzzy,
			Video:          fuzzy,
		},
	}
}

// --- Strategies ---

type exactStrategy struct{}

func (exactStrategy) Evaluate(_ context.Context, q Question, response interface{}) (Verdict, error) {
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return Verdict{}, errInvalidSpec(q.Type, "correct answer")
	}
	resp, ok := asString(response)
	if !ok {
		return Verdict{}, nil
	}
	if strings.EqualFold(strings.TrimSpace(resp), strings.TrimSpace(q.CorrectAnswer)) {
		return Verdict{Correct: true, Points: q.Points}, nil
	}
	return Verdict{}, nil
}

type fuzzyStrategy struct {
	matcher *Matcher
}

func (s fuzzyStrategy) Evaluate(ctx context.Context, q Question, response interface{}) (Verdict, error) {
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return Verdict{}, errInvalidSpec(q.Type, "correct answer")
	}
	resp, ok := asString(response)
	if !ok {
		return Verdict{}, nil
	}
	if s.matcher.Match(ctx, resp, q.CorrectAnswer) {
		return Verdict{Correct: true, Points: q.Points}, nil
	}
	return Verdict{}, nil
}

// helpers

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asStringSlice(v interface{}) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
