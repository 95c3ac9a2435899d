package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// RetryOptions configures Retry.
type RetryOptions struct {
	Provider    string
	MaxAttempts int
	Backoff     time.Duration
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

func (o RetryOptions) withDefaults() RetryOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultRetryAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = defaultBackoff
	}
	if o.Provider == "" {
		o.Provider = "provider"
	}
	return o
}

// Retry runs op until it succeeds, returns a permanent error, the context ends,
// or MaxAttempts is reached. Rate limit responses wait for their Retry-After.
func Retry[T any](ctx context.Context, opts RetryOptions, op func(context.Context) (T, error)) (T, error) {
	opts = opts.withDefaults()

	policy := newRetryPolicy(opts.Backoff)
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(opts.MaxAttempts-1)), ctx)

	attempt := 0
	wrapped := func() (T, error) {
		attempt++
		start := time.Now()
		val, err := op(ctx)
		opts.Metrics.RecordProviderAttempt(opts.Provider, time.Since(start), err)
		if err == nil {
			return val, nil
		}

		if rl, ok := AsRateLimitError(err); ok {
			opts.Metrics.RecordRateLimit(opts.Provider, rl.RetryAfter)
			policy.retryAfter = rl.RetryAfter
		}
		if !retryable(err) {
			return val, backoff.Permanent(err)
		}
		return val, err
	}

	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, opts.Logger, slog.LevelWarn, opts.Provider, "provider fetch retry",
			logging.FieldAttempt, attempt,
			"max_attempts", opts.MaxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	val, err := backoff.RetryNotifyWithData(wrapped, b, notify)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = ctxErr
		}
		logWithProvider(ctx, opts.Logger, slog.LevelWarn, opts.Provider, "provider fetch failed",
			"attempts", attempt,
			"error", err,
		)
	}
	return val, err
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) || errors.Is(err, ErrNotFound) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}

// retryPolicy is exponential backoff that yields to a pending Retry-After once.
type retryPolicy struct {
	*backoff.ExponentialBackOff
	retryAfter time.Duration
}

func newRetryPolicy(initial time.Duration) *retryPolicy {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initial
	exp.MaxInterval = maxBackoff
	exp.MaxElapsedTime = 0
	return &retryPolicy{ExponentialBackOff: exp}
}

func (p *retryPolicy) NextBackOff() time.Duration {
	if p.retryAfter > 0 {
		d := p.retryAfter
		p.retryAfter = 0
		return d
	}
	return p.ExponentialBackOff.NextBackOff()
}

func (p *retryPolicy) Reset() {
	p.retryAfter = 0
	p.ExponentialBackOff.Reset()
}
