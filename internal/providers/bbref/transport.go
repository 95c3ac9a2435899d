package bbref

import (
	"net/http"
	"strings"
	"time"

	"github.com/ajuarez99/ballknowers/internal/providers"
)

func resolveHTTPClient(client providers.Doer, timeout time.Duration) providers.Doer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
