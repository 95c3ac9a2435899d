package providers

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func statusDoer(status int, calls *int) Doer {
	return DoerFunc(func(req *http.Request) (*http.Response, error) {
		*calls++
		return &http.Response{StatusCode: status, Body: http.NoBody}, nil
	})
}

func TestBreakerDoerOpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	var transitions []string
	d := NewBreakerDoer(statusDoer(http.StatusBadGateway, &calls), BreakerConfig{
		Name:     "sleeper",
		Failures: 2,
		Timeout:  time.Hour,
		OnStateChange: func(name, from, to string) {
			transitions = append(transitions, from+"->"+to)
		},
	})
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	for i := 0; i < 2; i++ {
		resp, err := d.Do(req)
		if err != nil {
			t.Fatalf("expected response passthrough while closed, got %v", err)
		}
		if resp.StatusCode != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", resp.StatusCode)
		}
	}

	if _, err := d.Do(req); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected open breaker error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected open breaker to skip upstream, got %d calls", calls)
	}
	if len(transitions) != 1 || transitions[0] != "closed->open" {
		t.Fatalf("unexpected transitions %v", transitions)
	}
}

func TestBreakerDoerIgnoresClientErrors(t *testing.T) {
	calls := 0
	d := NewBreakerDoer(statusDoer(http.StatusNotFound, &calls), BreakerConfig{Name: "x", Failures: 1, Timeout: time.Hour})
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	for i := 0; i < 3; i++ {
		if _, err := d.Do(req); err != nil {
			t.Fatalf("expected 404 not to trip breaker, got %v", err)
		}
	}
	if calls != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", calls)
	}
}

func TestBreakerDoerCountsTransportErrors(t *testing.T) {
	boom := errors.New("dial failed")
	d := NewBreakerDoer(DoerFunc(func(*http.Request) (*http.Response, error) { return nil, boom }),
		BreakerConfig{Name: "x", Failures: 1, Timeout: time.Hour})
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	if _, err := d.Do(req); !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if _, err := d.Do(req); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected breaker open, got %v", err)
	}
}
