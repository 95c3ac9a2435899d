package config

import "time"

const (
	envProvider  = "PROVIDER"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envSleeperBaseURL  = "SLEEPER_BASE_URL"
	envSleeperLeague   = "SLEEPER_LEAGUE_ID"
	envSleeperDraft    = "SLEEPER_DRAFT_ID"
	envLeagueMembers   = "LEAGUE_MEMBERS"
	envSleeperRate     = "SLEEPER_RATE_PER_SECOND"
	envTrendingHours   = "TRENDING_LOOKBACK_HOURS"
	envTrendingLimit   = "TRENDING_LIMIT"
	envBbrefBaseURL    = "BBREF_BASE_URL"
	envBbrefTimeout    = "BBREF_TIMEOUT"
	envDebugHTMLDir    = "DEBUG_HTML_DIR"
	envRetryAttempts   = "FETCH_RETRY_ATTEMPTS"
	envRetryBackoff    = "FETCH_RETRY_BACKOFF"
	envBreakerFailures = "BREAKER_FAILURES"
	envBreakerTimeout  = "BREAKER_TIMEOUT"
	envReportDir       = "REPORT_DIR"
	envReportRetention = "REPORT_RETENTION_DAYS"
	envReportTopN      = "REPORT_TOP_N"
	envScoringConfig   = "SCORING_CONFIG"
	envBackfillRate    = "BACKFILL_INTERVAL"

	envMetricsOn      = "METRICS_ENABLED"
	envPushgatewayURL = "PUSHGATEWAY_URL"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	// ProviderLive fetches from basketball-reference and Sleeper.
	ProviderLive = "live"
	// ProviderFixture serves canned data for offline runs.
	ProviderFixture = "fixture"

	defaultProvider  = ProviderLive
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultSleeperBaseURL = "https://api.sleeper.app/v1"
	// Sleeper asks clients to stay under 1000 calls per minute.
	defaultSleeperRate   = 10
	defaultTrendingHours = 24
	defaultTrendingLimit = 25

	defaultBbrefBaseURL = "https://www.basketball-reference.com"
	defaultBbrefTimeout = 30 * time.Second

	defaultRetryAttempts   = 3
	defaultRetryBackoff    = 200 * time.Millisecond
	defaultBreakerFailures = 3
	defaultBreakerTimeout  = 30 * time.Second

	defaultReportDir       = "data"
	defaultReportRetention = 30
	defaultReportTopN      = 20
	// basketball-reference throttles bursts; space backfill requests out.
	defaultBackfillInterval = 5 * time.Second

	defaultMetricsEnabled = false
	defaultServiceName    = "ballknowers"
)
