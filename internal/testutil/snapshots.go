package testutil

import (
	"testing"

	"github.com/ajuarez99/ballknowers/internal/snapshots"
)

// NewTempWriter returns a report writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteReport saves a sample report for the date.
func WriteReport(t *testing.T, w *snapshots.Writer, date string) string {
	t.Helper()
	path, err := w.WriteReport(date, SampleReport(date))
	if err != nil {
		t.Fatalf("failed to write report %s: %v", date, err)
	}
	return path
}

// ReportPath returns the expected file path for a report date.
func ReportPath(w *snapshots.Writer, date string) string {
	return snapshots.ReportPath(w.BasePath(), date)
}
