package eval

import (
	"context"
	"strings"

	"github.com/quizforge/evalengine/internal/normalize"
	"github.com/quizforge/evalengine/pkg/similarity"
)

// Tuned thresholds of the rejection pipeline. The gates are deliberately
// strict: a short or wildly different answer must never pass.
const (
	minAnswerRunes       = 3
	minSubmittedRunes    = 4
	lengthRatioLow       = 0.8
	lengthRatioHigh      = 1.3
	charOverlapFloor     = 0.7
	charOverlapStrong    = 0.85
	singleWordThreshold  = 0.9
	wordRelatedThreshold = 0.8
	wordExactThreshold   = 0.98
	finalRatioFloor      = 0.8
	significantWordRunes = 2 // tokens longer than this count as words
)

// Decision is the outcome of one pipeline stage.
type Decision int

const (
	Continue Decision = iota
	Accept
	Reject
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "continue"
	}
}

// StageResult records how a single stage ruled.
type StageResult struct {
	Stage    string
	Decision Decision
}

// Trace is the per-stage record of one match run, ending at the stage that
// decided the outcome.
type Trace []StageResult

// Matcher decides whether a free-text submission matches a reference
// answer. It is stateless and safe for concurrent use.
type Matcher struct {
	normalizer normalize.Normalizer
}

func NewMatcher(n normalize.Normalizer) *Matcher {
	if n == nil {
		n = normalize.Fallback()
	}
	return &Matcher{normalizer: n}
}

// Match reports whether submitted matches correct. Inputs are trimmed and
// lower-cased defensively regardless of caller convention.
func (m *Matcher) Match(ctx context.Context, submitted, correct string) bool {
	ok, _ := m.MatchTrace(ctx, submitted, correct)
	return ok
}

// MatchTrace is Match plus the stage-by-stage record, for near-miss review
// tooling.
func (m *Matcher) MatchTrace(ctx context.Context, submitted, correct string) (bool, Trace) {
	st := &matchState{
		submitted: strings.ToLower(strings.TrimSpace(submitted)),
		correct:   strings.ToLower(strings.TrimSpace(correct)),
	}
	st.subRunes = []rune(st.submitted)
	st.corRunes = []rune(st.correct)

	trace := make(Trace, 0, len(pipeline))
	for _, s := range pipeline {
		d := s.run(ctx, m, st)
		trace = append(trace, StageResult{Stage: s.name, Decision: d})
		switch d {
		case Accept:
			return true, trace
		case Reject:
			return false, trace
		}
	}
	// The final stage always decides; reaching here means the pipeline was
	// misassembled.
	return false, trace
}

type matchState struct {
	submitted string // trimmed, lower-cased
	correct   string
	subRunes  []rune
	corRunes  []rune

	// Comparison forms for the later gates: normalized output, or the raw
	// lower-cased strings when normalization misbehaved.
	cmpSub    string
	cmpCor    string
	subTokens []string
	corTokens []string
	stemEqual bool
	normEqual bool
	degraded  bool

	overlap float64
}

type stage struct {
	name string
	run  func(ctx context.Context, m *Matcher, st *matchState) Decision
}

// The ordered rejection pipeline. Every stage may short-circuit; acceptance
// happens only at the designated success checks.
var pipeline = []stage{
	{"min_length", stageMinLength},
	{"exact_match", stageExactMatch},
	{"length_ratio", stageLengthRatio},
	{"normalize", stageNormalize},
	{"normalized_equality", stageNormalizedEquality},
	{"char_overlap", stageCharOverlap},
	{"single_word", stageSingleWord},
	{"common_start", stageCommonStart},
	{"word_match", stageWordMatch},
	{"final_similarity", stageFinalSimilarity},
}

// Rejects single-letter guesses even against very short correct answers.
func stageMinLength(_ context.Context, _ *Matcher, st *matchState) Decision {
	if len(st.subRunes) < minAnswerRunes || len(st.corRunes) < minAnswerRunes {
		return Reject
	}
	return Continue
}

func stageExactMatch(_ context.Context, _ *Matcher, st *matchState) Decision {
	if st.submitted == st.correct {
		return Accept
	}
	return Continue
}

// Rejects truncations ("York" for "New York") and padded answers
// ("New York City Metropolitan Area").
func stageLengthRatio(_ context.Context, _ *Matcher, st *matchState) Decision {
	ls := float64(len(st.subRunes))
	lc := float64(len(st.corRunes))
	floor := lengthRatioLow * lc
	if floor < minSubmittedRunes {
		floor = minSubmittedRunes
	}
	if ls < floor || ls > lengthRatioHigh*lc {
		return Reject
	}
	return Continue
}

// Fills the comparison forms. A normalizer fault is absorbed here: the
// remaining gates re-run on the raw lower-cased strings.
func stageNormalize(ctx context.Context, m *Matcher, st *matchState) Decision {
	nSub, errSub := m.normalizer.Normalize(ctx, st.submitted)
	nCor, errCor := m.normalizer.Normalize(ctx, st.correct)
	if errSub != nil || errCor != nil {
		st.degraded = true
		st.cmpSub = st.submitted
		st.cmpCor = st.correct
		st.subTokens = strings.Fields(st.submitted)
		st.corTokens = strings.Fields(st.correct)
		return Continue
	}
	st.cmpSub = nSub.Normalized
	st.cmpCor = nCor.Normalized
	st.subTokens = nSub.Tokens
	st.corTokens = nCor.Tokens
	st.normEqual = nSub.Normalized != "" && nSub.Normalized == nCor.Normalized
	st.stemEqual = nSub.Stemmed != "" && nSub.Stemmed == nCor.Stemmed
	if st.cmpSub == "" {
		st.cmpSub = st.submitted
	}
	if st.cmpCor == "" {
		st.cmpCor = st.correct
	}
	return Continue
}

func stageNormalizedEquality(_ context.Context, _ *Matcher, st *matchState) Decision {
	if st.degraded {
		return Continue
	}
	if st.normEqual || st.stemEqual {
		return Accept
	}
	return Continue
}

// Compares the sets of distinct characters on both sides.
func stageCharOverlap(_ context.Context, _ *Matcher, st *matchState) Decision {
	st.overlap = runeSetOverlap(st.cmpSub, st.cmpCor)
	if st.overlap < charOverlapFloor {
		return Reject
	}
	return Continue
}

// A one-word submission must relate to at least one word of the correct
// answer: equality, substring either way, or a close Jaro-Winkler hit.
func stageSingleWord(_ context.Context, _ *Matcher, st *matchState) Decision {
	words := strings.Fields(st.cmpSub)
	if len(words) != 1 {
		return Continue
	}
	sub := words[0]
	for _, w := range strings.Fields(st.cmpCor) {
		if sub == w || strings.Contains(w, sub) || strings.Contains(sub, w) {
			return Continue
		}
		if similarity.JaroWinkler(sub, w) >= singleWordThreshold {
			return Continue
		}
	}
	return Reject
}

// Answers that start differently need a strong character overlap to stay in.
func stageCommonStart(_ context.Context, _ *Matcher, st *matchState) Decision {
	sr := []rune(st.cmpSub)
	cr := []rune(st.cmpCor)
	if sharedPrefix(sr, cr) {
		return Continue
	}
	if st.overlap < charOverlapStrong {
		return Reject
	}
	return Continue
}

func sharedPrefix(a, b []rune) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return a[0] == b[0]
}

// Word-level check over significant words (tokens longer than two runes).
// No loosely related word pair at all means reject; every submitted word
// matching near-exactly means accept. Anything in between falls through to
// the whole-string gate.
func stageWordMatch(_ context.Context, _ *Matcher, st *matchState) Decision {
	sigSub := significantWords(st.subTokens)
	sigCor := significantWords(st.corTokens)
	if len(sigSub) == 0 || len(sigCor) == 0 {
		return Continue
	}

	related := false
	matched := 0
	for _, sw := range sigSub {
		bestExact := false
		for _, cw := range sigCor {
			if sw == cw {
				related = true
				bestExact = true
				break
			}
			jw := similarity.JaroWinkler(sw, cw)
			if jw >= wordRelatedThreshold {
				related = true
			}
			if jw >= wordExactThreshold {
				bestExact = true
			}
		}
		if bestExact {
			matched++
		}
	}
	if !related {
		return Reject
	}

	denom := len(sigSub)
	if len(sigCor) > denom {
		denom = len(sigCor)
	}
	if float64(matched)/float64(denom) >= 1.0 {
		return Accept
	}
	return Continue
}

// Last safety net: overall edit-distance similarity of the comparison forms.
func stageFinalSimilarity(_ context.Context, _ *Matcher, st *matchState) Decision {
	if similarity.Ratio(st.cmpSub, st.cmpCor) >= finalRatioFloor {
		return Accept
	}
	return Reject
}

func significantWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len([]rune(tok)) > significantWordRunes {
			out = append(out, tok)
		}
	}
	return out
}

func runeSetOverlap(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	longest := len(setA)
	if len(setB) > longest {
		longest = len(setB)
	}
	if longest == 0 {
		return 0.0
	}
	inter := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			inter++
		}
	}
	return float64(inter) / float64(longest)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
