package config

import "time"

// FetchConfig tunes retries and circuit breaking for upstream calls.
type FetchConfig struct {
	RetryAttempts   int
	RetryBackoff    time.Duration
	BreakerFailures int
	BreakerTimeout  time.Duration
}

func loadFetch() FetchConfig {
	return FetchConfig{
		RetryAttempts:   intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:    durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		BreakerFailures: intEnvOrDefault(envBreakerFailures, defaultBreakerFailures),
		BreakerTimeout:  durationEnvOrDefault(envBreakerTimeout, defaultBreakerTimeout),
	}
}
