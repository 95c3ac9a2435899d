package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig configures NewBreakerDoer.
type BreakerConfig struct {
	Name string
	// Failures is the count of consecutive failures that opens the breaker.
	Failures int
	// Timeout is how long the breaker stays open before probing again.
	Timeout       time.Duration
	OnStateChange func(name, from, to string)
}

var errServerStatus = errors.New("server error status")

type breakerDoer struct {
	next Doer
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerDoer wraps next in a circuit breaker. Transport errors and 5xx responses count as failures.
// While open, requests fail fast with ErrProviderUnavailable.
func NewBreakerDoer(next Doer, cfg BreakerConfig) Doer {
	failures := cfg.Failures
	if failures <= 0 {
		failures = 3
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			cfg.OnStateChange(name, from.String(), to.String())
		}
	}
	return &breakerDoer{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (d *breakerDoer) Do(req *http.Request) (*http.Response, error) {
	if d.next == nil {
		return nil, ErrProviderUnavailable
	}
	out, err := d.cb.Execute(func() (interface{}, error) {
		resp, err := d.next.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %s breaker %v", ErrProviderUnavailable, d.cb.Name(), err)
	case errors.Is(err, errServerStatus):
		return out.(*http.Response), nil
	case err != nil:
		return nil, err
	}
	return out.(*http.Response), nil
}
