package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/ajuarez99/ballknowers/internal/config"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/metrics"
	"github.com/ajuarez99/ballknowers/internal/providers"
	"github.com/ajuarez99/ballknowers/internal/providers/bbref"
	"github.com/ajuarez99/ballknowers/internal/providers/fixture"
	"github.com/ajuarez99/ballknowers/internal/providers/sleeper"
)

// providerFactory assembles providers with the shared fetch wrappers.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) retryOptions(cfg config.Config, provider string) providers.RetryOptions {
	return providers.RetryOptions{
		Provider:    provider,
		MaxAttempts: cfg.Fetch.RetryAttempts,
		Backoff:     cfg.Fetch.RetryBackoff,
		Logger:      f.logger,
		Metrics:     f.metrics,
	}
}

func (f providerFactory) useFixture(cfg config.Config) bool {
	switch normalizeProviderName(cfg.Provider) {
	case config.ProviderFixture:
		return true
	case config.ProviderLive:
		return false
	default:
		logging.Warn(f.logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return true
	}
}

// boxScores builds the basketball-reference scraper behind the retrying decorator.
func (f providerFactory) boxScores(cfg config.Config) providers.BoxScoreProvider {
	if f.useFixture(cfg) {
		return fixture.New()
	}
	client := bbref.NewClient(bbref.Config{
		BaseURL:  cfg.BoxScores.BaseURL,
		Timeout:  cfg.BoxScores.Timeout,
		DebugDir: cfg.BoxScores.DebugDir,
		Logger:   f.logger,
	})
	return providers.NewRetryingProvider(client, f.retryOptions(cfg, bbref.ProviderName))
}

// sleeper builds the Sleeper client over a rate-limited, circuit-broken transport.
func (f providerFactory) sleeper(cfg config.Config) providers.SleeperProvider {
	if f.useFixture(cfg) {
		return fixture.New()
	}
	var doer providers.Doer = &http.Client{Timeout: sleeperTimeout}
	doer = providers.NewBreakerDoer(doer, providers.BreakerConfig{
		Name:     sleeper.ProviderName,
		Failures: cfg.Fetch.BreakerFailures,
		Timeout:  cfg.Fetch.BreakerTimeout,
		OnStateChange: func(name, from, to string) {
			logging.Warn(f.logger, "circuit breaker state changed", "breaker", name, "from", from, "to", to)
			f.metrics.RecordBreakerState(name, from, to)
		},
	})
	doer = providers.NewRateLimitedDoer(doer, providers.NewLimiter(cfg.Sleeper.RatePerSecond))

	return sleeper.NewClient(sleeper.Config{
		BaseURL:    cfg.Sleeper.BaseURL,
		HTTPClient: doer,
		Retry:      f.retryOptions(cfg, sleeper.ProviderName),
		Logger:     f.logger,
	})
}
