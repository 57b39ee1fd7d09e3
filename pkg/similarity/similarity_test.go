package similarity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "test", 4},
		{"test", "", 4},
		{"test", "test", 0},
		{"kitten", "sitting", 3},
		{"amsterdm", "amsterdam", 1},
		{"new yrk", "new york", 1},
		{"über", "uber", 1}, // code points, not bytes
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Levenshtein(tc.a, tc.b), "Levenshtein(%q, %q)", tc.a, tc.b)
	}
}

func TestRatio(t *testing.T) {
	require.Equal(t, 1.0, Ratio("", ""))
	require.Equal(t, 0.0, Ratio("", "test"))
	require.Equal(t, 1.0, Ratio("test", "test"))
	require.InDelta(t, 1.0-1.0/9.0, Ratio("amsterdm", "amsterdam"), 1e-9)
	require.InDelta(t, 1.0-1.0/8.0, Ratio("new yrk", "new york"), 1e-9)
}

func TestJaroWinkler(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"test", "test", 1.0},
		{"a", "b", 0.0},
		{"", "test", 0.0},
		{"test", "", 0.0},
		// Classic reference vectors.
		{"MARTHA", "MARHTA", 0.9611},
		{"DIXON", "DICKSONX", 0.8133},
		{"DWAYNE", "DUANE", 0.8400},
	}
	for _, tc := range tests {
		require.InDelta(t, tc.want, JaroWinkler(tc.a, tc.b), 1e-4, "JaroWinkler(%q, %q)", tc.a, tc.b)
	}
}

func TestJaroWinklerSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"amsterdm", "amsterdam"},
		{"newyork", "new york"},
		{"colour", "color"},
	}
	for _, p := range pairs {
		require.InDelta(t, JaroWinkler(p[0], p[1]), JaroWinkler(p[1], p[0]), 1e-12)
	}
}

func TestJaroWinklerBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "a"}, {"ab", "ba"}, {"abc", "xyz"}, {"prefix", "prefixed"},
	}
	for _, p := range pairs {
		got := JaroWinkler(p[0], p[1])
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 1.0)
	}
}
