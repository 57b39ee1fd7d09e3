package eval

import "context"

// Flat partial credit for a single adjacent swap, regardless of the
// question's point value.
const swapConsolationPoints = 1

type sequenceStrategy struct{}

func (sequenceStrategy) Evaluate(_ context.Context, q Question, response interface{}) (Verdict, error) {
	if len(q.Sequence) == 0 {
		return Verdict{}, errInvalidSpec(q.Type, "sequence reference")
	}
	submitted, ok := asStringSlice(response)
	if !ok {
		return Verdict{}, nil
	}
	correct, points := scoreSequence(submitted, q.Sequence, q.Points)
	return Verdict{Correct: correct, Points: points}, nil
}

// scoreSequence awards full credit for a perfect ordering, one point when
// the only defect is a single adjacent transposition, and zero otherwise.
// Positions are compared by exact string equality; fuzzy matching does not
// apply at this layer.
func scoreSequence(submitted, reference []string, points int) (bool, int) {
	n := len(submitted)
	if len(reference) < n {
		n = len(reference)
	}

	correctCount := 0
	for i := 0; i < n; i++ {
		if submitted[i] == reference[i] {
			correctCount++
		}
	}

	swappedPairs := 0
	for i := 0; i < n-1; i++ {
		if reference[i] == submitted[i+1] && reference[i+1] == submitted[i] {
			swappedPairs++
		}
	}

	switch {
	case correctCount == len(reference):
		return true, points
	case correctCount == len(reference)-2 && swappedPairs == 1:
		return true, swapConsolationPoints
	default:
		return false, 0
	}
}
