package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ajuarez99/ballknowers/internal/metrics"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), RetryOptions{MaxAttempts: 3, Backoff: time.Millisecond},
		func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("boom")
			}
			return "ok", nil
		})
	if err != nil || got != "ok" {
		t.Fatalf("expected ok, got %q %v", got, err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetryStopsAfterMaxAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), RetryOptions{MaxAttempts: 2, Backoff: time.Millisecond},
		func(context.Context) (int, error) {
			calls++
			return 0, errors.New("boom")
		})
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestRetryStopsOnPermanentStatus(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), RetryOptions{MaxAttempts: 5, Backoff: time.Millisecond},
		func(context.Context) (int, error) {
			calls++
			return 0, &StatusError{Provider: "sleeper", StatusCode: 400}
		})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt for 4xx, got %d", calls)
	}
}

func TestRetryStopsOnNotFound(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), RetryOptions{MaxAttempts: 5, Backoff: time.Millisecond},
		func(context.Context) (int, error) {
			calls++
			return 0, ErrNotFound
		})
	if !errors.Is(err, ErrNotFound) || calls != 1 {
		t.Fatalf("expected one attempt and ErrNotFound, got %d %v", calls, err)
	}
}

func TestRetryRespectsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, RetryOptions{MaxAttempts: 3, Backoff: time.Hour},
		func(context.Context) (int, error) { return 0, errors.New("boom") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestRetryHonorsRetryAfterAndRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	calls := 0
	start := time.Now()

	_, err := Retry(context.Background(), RetryOptions{Provider: "rl", MaxAttempts: 2, Backoff: time.Hour, Metrics: rec},
		func(context.Context) (int, error) {
			calls++
			if calls == 1 {
				return 0, &RateLimitError{StatusCode: 429, RetryAfter: 5 * time.Millisecond}
			}
			return 1, nil
		})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected retry-after to override hour backoff, waited %s", elapsed)
	}
	if got := rec.RateLimitHits("rl"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls("rl"); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors("rl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
}

func TestRetryPolicyUsesRetryAfterOnce(t *testing.T) {
	p := newRetryPolicy(50 * time.Millisecond)
	p.RandomizationFactor = 0
	p.Reset()
	p.retryAfter = 3 * time.Second

	if got := p.NextBackOff(); got != 3*time.Second {
		t.Fatalf("expected retry-after delay, got %s", got)
	}
	if got := p.NextBackOff(); got != 50*time.Millisecond {
		t.Fatalf("expected exponential delay after retry-after consumed, got %s", got)
	}
	if got := p.NextBackOff(); got == backoff.Stop || got <= 50*time.Millisecond {
		t.Fatalf("expected growing delay, got %s", got)
	}
}

func TestRetryOptionsDefaults(t *testing.T) {
	o := RetryOptions{}.withDefaults()
	if o.MaxAttempts != defaultRetryAttempts || o.Backoff != defaultBackoff || o.Provider != "provider" {
		t.Fatalf("unexpected defaults %+v", o)
	}
}
