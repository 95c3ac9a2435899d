package testutil

import (
	"context"
	"testing"

	"github.com/ajuarez99/ballknowers/internal/metrics"
)

// NewRecorderWithShutdown returns a recorder and a no-op shutdown to simplify tests.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// NewTelemetry builds enabled telemetry without an OTLP exporter and shuts it down on cleanup.
func NewTelemetry(t *testing.T) *metrics.Telemetry {
	t.Helper()
	tel, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true, ServiceName: "ballknowers-test"})
	if err != nil {
		t.Fatalf("failed to set up telemetry: %v", err)
	}
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })
	return tel
}
