// Package normalize turns raw answer text into the normalized, stemmed and
// tokenized forms consumed by the fuzzy matcher. The richer normalizers are
// accuracy enhancements only: the matcher must behave correctly with the
// plain fallback, so every implementation degrades to it rather than
// surfacing a failure.
package normalize

import (
	"context"
	"strings"
)

// Text is the normalized view of a single string. It is recomputed per
// comparison and never cached.
type Text struct {
	Language   string   `json:"language"`
	Normalized string   `json:"normalized"`
	Stemmed    string   `json:"stemmed"`
	Tokens     []string `json:"tokens"`
}

// Normalizer converts raw text into its normalized form.
type Normalizer interface {
	Normalize(ctx context.Context, text string) (Text, error)
}

type fallback struct{}

// Fallback returns the native normalizer: lower-case, whitespace
// tokenization, no stemming. It never fails.
func Fallback() Normalizer { return fallback{} }

func (fallback) Normalize(_ context.Context, text string) (Text, error) {
	return FallbackText(text), nil
}

// FallbackText is the degraded normalization contract: normalized and
// stemmed are the lower-cased input, tokens are its whitespace fields.
func FallbackText(text string) Text {
	lower := strings.ToLower(text)
	return Text{
		Language:   "en",
		Normalized: lower,
		Stemmed:    lower,
		Tokens:     strings.Fields(lower),
	}
}
