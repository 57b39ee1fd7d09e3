package normalize

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// HTTPNormalizer calls an out-of-process NLP service. Any failure - network,
// timeout, bad payload - degrades to the fallback normalizer so evaluation
// latency stays bounded and the caller never sees the outage.
type HTTPNormalizer struct {
	httpClient    *resty.Client
	language      string
	timeout       time.Duration
	retryAttempts uint
	logger        *zap.Logger
}

type HTTPOption func(*HTTPNormalizer)

func WithTimeout(d time.Duration) HTTPOption {
	return func(n *HTTPNormalizer) { n.timeout = d }
}

func WithRetryAttempts(attempts uint) HTTPOption {
	return func(n *HTTPNormalizer) { n.retryAttempts = attempts }
}

func WithLanguage(lang string) HTTPOption {
	return func(n *HTTPNormalizer) { n.language = lang }
}

func WithLogger(logger *zap.Logger) HTTPOption {
	return func(n *HTTPNormalizer) { n.logger = logger }
}

func NewHTTPNormalizer(baseURL string, opts ...HTTPOption) *HTTPNormalizer {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	n := &HTTPNormalizer{
		httpClient:    client,
		language:      "en",
		timeout:       2 * time.Second,
		retryAttempts: 2,
		logger:        zap.NewNop(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

func (n *HTTPNormalizer) Close() error {
	return n.httpClient.Close()
}

type normalizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

func (n *HTTPNormalizer) Normalize(ctx context.Context, text string) (Text, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var out Text
	err := retry.Do(
		func() error {
			res, err := n.httpClient.R().
				SetContext(ctx).
				SetBody(normalizeRequest{Text: text, Language: n.language}).
				SetResult(&out).
				Post("/normalize")
			if err != nil {
				return fmt.Errorf("httpClient.Post > %w", err)
			}
			if res.IsError() {
				return fmt.Errorf("normalizer service: status %d", res.StatusCode())
			}
			return nil
		},
		retry.Attempts(n.retryAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		n.logger.Warn("normalizer unavailable, using fallback", zap.Error(err))
		return FallbackText(text), nil
	}
	if out.Normalized == "" && out.Stemmed == "" {
		n.logger.Warn("normalizer returned empty payload, using fallback")
		return FallbackText(text), nil
	}
	if out.Language == "" {
		out.Language = n.language
	}
	return out, nil
}
