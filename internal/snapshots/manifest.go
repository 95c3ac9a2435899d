package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks which reports are on disk.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generated_at"`
	Retention   Retention   `json:"retention"`
	Reports     ReportsMeta `json:"reports"`
}

type Retention struct {
	ReportDays int `json:"report_days"`
}

type ReportsMeta struct {
	Dates         []string  `json:"dates"`
	LastWritten   string    `json:"last_written,omitempty"`
	LastRefreshed time.Time `json:"last_refreshed"`
}

func defaultManifest(retentionDays int, now time.Time) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: now.UTC(),
		Retention:   Retention{ReportDays: retentionDays},
		Reports:     ReportsMeta{Dates: []string{}},
	}
}

func readManifest(path string, retentionDays int, now time.Time) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays, now), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays, now), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now.UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(manifestPath(basePath), data)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
