package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/ajuarez99/ballknowers/internal/report"
)

// Store defines how saved reports are loaded.
type Store interface {
	LoadReport(date string) (report.Daily, error)
}

// FSStore loads reports from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed report store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadReport reads the report for the given date (YYYY-MM-DD).
// Files are expected at {basePath}/reports/fantasy_report_{date}.json.
func (s *FSStore) LoadReport(date string) (report.Daily, error) {
	if s == nil {
		return report.Daily{}, errors.New("report store not configured")
	}
	if date == "" {
		return report.Daily{}, errDateRequired
	}
	var d report.Daily
	if err := decodeFile(ReportPath(s.basePath, date), &d); err != nil {
		return report.Daily{}, err
	}
	if d.Date == "" {
		d.Date = date
	}
	return d, nil
}

// Manifest reads the manifest, returning an empty one when none was written yet.
func (s *FSStore) Manifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, errors.New("report store not configured")
	}
	var m Manifest
	if err := decodeFile(manifestPath(s.basePath), &m); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{Reports: ReportsMeta{Dates: []string{}}}, nil
		}
		return Manifest{}, err
	}
	return m, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
