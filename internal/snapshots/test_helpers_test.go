package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/report"
)

var fixedNow = time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

func simpleReport(date string) report.Daily {
	return report.Daily{
		Date:         date,
		TopPlayers:   []boxscores.StatLine{{Name: "Player " + date, Points: 10, FantasyPoints: 10}},
		TotalPlayers: 1,
		GeneratedAt:  fixedNow,
	}
}

func newFixedWriter(t *testing.T, retentionDays int) *Writer {
	t.Helper()
	w := NewWriter(t.TempDir(), retentionDays)
	w.now = func() time.Time { return fixedNow }
	return w
}

func writeReport(t *testing.T, w *Writer, date string, d report.Daily) string {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	path, err := w.WriteReport(date, d)
	if err != nil {
		t.Fatalf("failed to write report %s: %v", date, err)
	}
	return path
}

func writeSimpleReport(t *testing.T, w *Writer, date string) string {
	t.Helper()
	return writeReport(t, w, date, simpleReport(date))
}

func requireReportExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(ReportPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected report for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
