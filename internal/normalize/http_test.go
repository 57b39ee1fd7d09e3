package normalize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPNormalizer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/normalize", r.URL.Path)
		var req normalizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "New York", req.Text)

		_ = json.NewEncoder(w).Encode(Text{
			Language:   "en",
			Normalized: "new york",
			Stemmed:    "new york",
			Tokens:     []string{"new", "york"},
		})
	}))
	defer srv.Close()

	n := NewHTTPNormalizer(srv.URL, WithTimeout(time.Second))
	defer n.Close()

	got, err := n.Normalize(context.Background(), "New York")
	require.NoError(t, err)
	require.Equal(t, "new york", got.Normalized)
	require.Equal(t, []string{"new", "york"}, got.Tokens)
}

func TestHTTPNormalizerFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewHTTPNormalizer(srv.URL, WithTimeout(time.Second), WithRetryAttempts(1))
	defer n.Close()

	got, err := n.Normalize(context.Background(), "New York")
	require.NoError(t, err)
	require.Equal(t, FallbackText("New York"), got)
}

func TestHTTPNormalizerFallsBackOnTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	n := NewHTTPNormalizer(srv.URL, WithTimeout(50*time.Millisecond), WithRetryAttempts(1))
	defer n.Close()

	start := time.Now()
	got, err := n.Normalize(context.Background(), "Amsterdam")
	require.NoError(t, err)
	require.Equal(t, FallbackText("Amsterdam"), got)
	require.Less(t, time.Since(start), time.Second)
}

func TestHTTPNormalizerFallsBackOnEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	n := NewHTTPNormalizer(srv.URL, WithTimeout(time.Second))
	defer n.Close()

	got, err := n.Normalize(context.Background(), "Amsterdam")
	require.NoError(t, err)
	require.Equal(t, FallbackText("Amsterdam"), got)
}
