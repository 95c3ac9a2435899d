package config

// SleeperConfig controls how we talk to the Sleeper API.
type SleeperConfig struct {
	BaseURL       string
	LeagueID      string
	DraftID       string
	Members       []string
	RatePerSecond float64
	LookbackHours int
	TrendingLimit int
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL:       envOrDefault(envSleeperBaseURL, defaultSleeperBaseURL),
		LeagueID:      envOrDefault(envSleeperLeague, ""),
		DraftID:       envOrDefault(envSleeperDraft, ""),
		Members:       listEnvOrDefault(envLeagueMembers, nil),
		RatePerSecond: floatEnvOrDefault(envSleeperRate, defaultSleeperRate),
		LookbackHours: intEnvOrDefault(envTrendingHours, defaultTrendingHours),
		TrendingLimit: intEnvOrDefault(envTrendingLimit, defaultTrendingLimit),
	}
}
