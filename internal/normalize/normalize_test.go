package normalize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackText(t *testing.T) {
	got := FallbackText("  New York  ")
	require.Equal(t, "en", got.Language)
	require.Equal(t, "  new york  ", got.Normalized)
	require.Equal(t, got.Normalized, got.Stemmed)
	require.Equal(t, []string{"new", "york"}, got.Tokens)
}

func TestFallbackNeverFails(t *testing.T) {
	n := Fallback()
	for _, s := range []string{"", "   ", "Ümläut", "日本語 テスト"} {
		_, err := n.Normalize(context.Background(), s)
		require.NoError(t, err)
	}
}

func TestLocalStripsDiacritics(t *testing.T) {
	n := NewLocal("en")
	got, err := n.Normalize(context.Background(), "Café Zoë")
	require.NoError(t, err)
	require.Equal(t, "cafe zoe", got.Normalized)
	require.Equal(t, []string{"cafe", "zoe"}, got.Tokens)
}

func TestLocalStemming(t *testing.T) {
	n := NewLocal("en")
	got, err := n.Normalize(context.Background(), "running pandas countries")
	require.NoError(t, err)
	require.Equal(t, "runn panda country", got.Stemmed)
}

func TestLocalLanguageTag(t *testing.T) {
	require.Equal(t, "en", NewLocal("").Language)
	require.Equal(t, "nl", NewLocal("nl").Language)
}

func TestStem(t *testing.T) {
	tests := []struct{ in, want string }{
		{"cats", "cat"},
		{"glass", "glass"},
		{"bus", "bus"},
		{"cities", "city"},
		{"walked", "walk"},
		{"king", "king"}, // too short for -ing stripping
		{"panda's", "panda"},
		{"sun", "sun"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, stem(tc.in), "stem(%q)", tc.in)
	}
}
