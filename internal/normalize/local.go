package normalize

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Local is an in-process normalizer that improves on the fallback with
// diacritic stripping and light suffix stemming. It is language-naive
// beyond the tag it reports.
type Local struct {
	Language string
}

func NewLocal(language string) *Local {
	if language == "" {
		language = "en"
	}
	return &Local{Language: language}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func (l *Local) Normalize(_ context.Context, text string) (Text, error) {
	lower := strings.ToLower(text)
	folded, _, err := transform.String(stripMarks, lower)
	if err != nil {
		// Keep the lower-cased form; degraded output is still valid.
		folded = lower
	}
	tokens := strings.Fields(folded)
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stemmed[i] = stem(tok)
	}
	return Text{
		Language:   l.Language,
		Normalized: folded,
		Stemmed:    strings.Join(stemmed, " "),
		Tokens:     tokens,
	}, nil
}

// stem strips a handful of common English suffixes. It is intentionally
// conservative: a wrong stem only costs accuracy, never correctness.
func stem(tok string) string {
	r := []rune(tok)
	switch {
	case len(r) > 4 && strings.HasSuffix(tok, "'s"):
		return string(r[:len(r)-2])
	case len(r) > 5 && strings.HasSuffix(tok, "ing"):
		return string(r[:len(r)-3])
	case len(r) > 4 && strings.HasSuffix(tok, "ies"):
		return string(r[:len(r)-3]) + "y"
	case len(r) > 4 && strings.HasSuffix(tok, "ed"):
		return string(r[:len(r)-2])
	case len(r) > 3 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") && !strings.HasSuffix(tok, "us"):
		return string(r[:len(r)-1])
	default:
		return tok
	}
}
