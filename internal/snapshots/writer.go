package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/report"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

// DefaultRetentionDays applies when a writer is built with a non-positive window.
const DefaultRetentionDays = 30

var (
	errWriterNotConfigured = errors.New("report writer not configured")
	errDateRequired        = errors.New("date required")
)

// Writer persists daily reports and the manifest, pruning reports outside retention.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
	logger        *slog.Logger
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// WithLogger sets the logger used for pruning failures.
func (w *Writer) WithLogger(logger *slog.Logger) *Writer {
	if w != nil {
		w.logger = logger
	}
	return w
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// HasReport reports whether a report for date is already on disk.
func (w *Writer) HasReport(date string) bool {
	if w == nil || w.basePath == "" || date == "" {
		return false
	}
	_, err := os.Stat(ReportPath(w.basePath, date))
	return err == nil
}

// WriteReport writes the report for date (YYYY-MM-DD) and returns the file path.
// A report that differs from the file on disk only in generated_at is not
// rewritten; the manifest is refreshed either way. The written date is never
// pruned, even when it falls outside retention.
func (w *Writer) WriteReport(date string, d report.Daily) (string, error) {
	if w == nil {
		return "", errWriterNotConfigured
	}
	if date == "" {
		return "", errDateRequired
	}
	if d.Date == "" {
		d.Date = date
	}

	target := ReportPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}

	if !sameReport(target, d, data) {
		if err := writeAtomic(target, data); err != nil {
			return "", err
		}
	}

	return target, w.updateManifest(date)
}

// sameReport reports whether the file at path holds d, ignoring generated_at.
func sameReport(path string, d report.Daily, data []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if bytes.Equal(existing, data) {
		return true
	}
	var prev report.Daily
	if err := json.Unmarshal(existing, &prev); err != nil {
		return false
	}
	prev.GeneratedAt = d.GeneratedAt
	normalized, err := json.MarshalIndent(prev, "", "  ")
	if err != nil {
		return false
	}
	return bytes.Equal(normalized, data)
}

func (w *Writer) updateManifest(date string) error {
	now := w.now().UTC()
	m, _ := readManifest(manifestPath(w.basePath), w.retentionDays, now)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.Reports.Dates = w.prune(dates, now, date)
	m.Reports.LastWritten = date
	m.Reports.LastRefreshed = now
	m.Retention.ReportDays = w.retentionDays

	return writeManifest(w.basePath, m, now)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, reportsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" || !strings.HasPrefix(name, reportPrefix) {
			continue
		}
		dates = append(dates, strings.TrimSuffix(strings.TrimPrefix(name, reportPrefix), ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

// prune removes reports dated before the retention cutoff. Names that do not
// parse as dates and the exempt date are kept, as is any report that fails to
// delete.
func (w *Writer) prune(dates []string, now time.Time, exempt string) []string {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := []string{}
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if d != exempt && err == nil && parsed.Before(cutoff) {
			if err := os.Remove(ReportPath(w.basePath, d)); err != nil && !os.IsNotExist(err) {
				logging.Warn(w.logger, "failed to prune report", logging.FieldDate, d, "err", err)
				keep = append(keep, d)
			}
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
