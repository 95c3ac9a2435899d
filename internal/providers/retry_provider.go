package providers

import (
	"context"
	"log/slog"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
)

// retryingProvider wraps a BoxScoreProvider with retry/backoff behavior.
type retryingProvider struct {
	inner BoxScoreProvider
	opts  RetryOptions
}

// NewRetryingProvider wraps the given provider with retries. Zero options fall back to defaults.
func NewRetryingProvider(inner BoxScoreProvider, opts RetryOptions) BoxScoreProvider {
	return &retryingProvider{inner: inner, opts: opts.withDefaults()}
}

func (r *retryingProvider) FetchBoxScores(ctx context.Context, date string) ([]boxscores.StatLine, error) {
	if r.inner == nil {
		logWithProvider(ctx, r.opts.Logger, slog.LevelWarn, r.opts.Provider, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	return Retry(ctx, r.opts, func(ctx context.Context) ([]boxscores.StatLine, error) {
		return r.inner.FetchBoxScores(ctx, date)
	})
}
