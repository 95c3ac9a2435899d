package sleeper

import "time"

const (
	// ProviderName labels logs and metrics for this client.
	ProviderName = "sleeper"

	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 10 * time.Second
	sport              = "nba"
)
