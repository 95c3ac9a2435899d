package config

// Config holds runtime configuration for the CLI.
type Config struct {
	Provider  string
	Log       LogConfig
	Sleeper   SleeperConfig
	BoxScores BoxScoresConfig
	Fetch     FetchConfig
	Report    ReportConfig
	Metrics   MetricsConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider: envOrDefault(envProvider, defaultProvider),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Sleeper:   loadSleeper(),
		BoxScores: loadBoxScores(),
		Fetch:     loadFetch(),
		Report:    loadReport(),
		Metrics:   loadMetrics(),
	}
}
