package config

import "time"

// BoxScoresConfig controls the basketball-reference scraper.
type BoxScoresConfig struct {
	BaseURL string
	Timeout time.Duration
	// DebugDir receives raw HTML responses when set.
	DebugDir string
}

func loadBoxScores() BoxScoresConfig {
	return BoxScoresConfig{
		BaseURL:  envOrDefault(envBbrefBaseURL, defaultBbrefBaseURL),
		Timeout:  durationEnvOrDefault(envBbrefTimeout, defaultBbrefTimeout),
		DebugDir: envOrDefault(envDebugHTMLDir, ""),
	}
}
