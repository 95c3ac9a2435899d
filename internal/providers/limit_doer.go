package providers

import (
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimitedDoer waits on a token bucket before each request.
type rateLimitedDoer struct {
	next    Doer
	limiter *rate.Limiter
}

// NewRateLimitedDoer returns a Doer that blocks until limiter admits each request.
// A nil limiter leaves requests unthrottled.
func NewRateLimitedDoer(next Doer, limiter *rate.Limiter) Doer {
	if limiter == nil {
		return next
	}
	return &rateLimitedDoer{next: next, limiter: limiter}
}

// NewLimiter builds a limiter allowing perSecond requests with a burst of one.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

func (d *rateLimitedDoer) Do(req *http.Request) (*http.Response, error) {
	if d.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := d.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return d.next.Do(req)
}
