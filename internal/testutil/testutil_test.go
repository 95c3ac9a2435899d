package testutil

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseDate("2024-01-02"); got.Day() != 2 {
		t.Fatalf("unexpected parsed date %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("01/02/2024")
}

func TestFixturesHelper(t *testing.T) {
	line := SampleStatLine("A", 10, 4, 2)
	if !line.Played() || line.Points != 10 || line.TotalRebounds != 4 {
		t.Fatalf("unexpected stat line %+v", line)
	}
	if p := SamplePlayer("1", "A B"); !p.HasName() {
		t.Fatalf("expected named player %+v", p)
	}
	d := SampleReport("2024-01-01")
	if d.Date != "2024-01-01" || len(d.TopPlayers) != 1 {
		t.Fatalf("unexpected report %+v", d)
	}
}

func TestUpstreamHelper(t *testing.T) {
	srv := NewUpstream(t, map[string]Route{
		"/players/nba":      {Body: `{}`},
		"/trending?limit=2": {Status: http.StatusTooManyRequests, Body: `slow`},
	})

	resp, err := http.Get(srv.URL + "/players/nba")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "{}" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}

	resp, err = http.Get(srv.URL + "/trending?limit=2")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected query route match, got %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRoundTripperFunc(t *testing.T) {
	client := &http.Client{Transport: RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusTeapot, Body: http.NoBody, Request: r}, nil
	})}
	resp, err := client.Get("http://example.invalid/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("expected stubbed status, got %d", resp.StatusCode)
	}
}

func TestSnapshotHelpers(t *testing.T) {
	w := NewTempWriter(t, 5)
	date := time.Now().UTC().Format(time.DateOnly)
	path := WriteReport(t, w, date)
	if path != ReportPath(w, date) {
		t.Fatalf("expected %s, got %s", ReportPath(w, date), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected report file, got %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected report contents")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	AssertLogged(t, buf, "hello", "k=v")

	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}

	tel := NewTelemetry(t)
	if tel.Recorder == nil || tel.Gatherer == nil {
		t.Fatalf("expected enabled telemetry, got %+v", tel)
	}
}
