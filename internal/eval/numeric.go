package eval

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// numericStrategy compares the parsed submission against NumericAnswer
// within an absolute tolerance. An unparsable submission is ordinary user
// input, not a fault: it scores zero instead of returning an error.
type numericStrategy struct{}

func (numericStrategy) Evaluate(_ context.Context, q Question, response interface{}) (Verdict, error) {
	if q.NumericAnswer == nil {
		return Verdict{}, errInvalidSpec(q.Type, "numeric answer")
	}
	resp, ok := asString(response)
	if !ok {
		return Verdict{}, nil
	}
	value, ok := parseDecimal(resp)
	if !ok {
		return Verdict{}, nil
	}
	tolerance := 0.0
	if q.NumericTolerance != nil {
		tolerance = *q.NumericTolerance
	}
	if math.Abs(value-*q.NumericAnswer) <= tolerance {
		return Verdict{Correct: true, Points: q.Points}, nil
	}
	return Verdict{}, nil
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
