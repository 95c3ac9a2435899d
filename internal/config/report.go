package config

import "time"

// ReportConfig controls report sizing, storage and backfill.
type ReportConfig struct {
	Dir              string
	RetentionDays    int           // reports older than this are pruned
	TopN             int           // size of the ranked list
	ScoringFile      string        // optional YAML weights file
	BackfillInterval time.Duration // delay between backfill fetches
}

func loadReport() ReportConfig {
	return ReportConfig{
		Dir:              envOrDefault(envReportDir, defaultReportDir),
		RetentionDays:    intEnvOrDefault(envReportRetention, defaultReportRetention),
		TopN:             intEnvOrDefault(envReportTopN, defaultReportTopN),
		ScoringFile:      envOrDefault(envScoringConfig, ""),
		BackfillInterval: durationEnvOrDefault(envBackfillRate, defaultBackfillInterval),
	}
}
