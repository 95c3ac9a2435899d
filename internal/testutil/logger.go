package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// NewBufferLogger returns a slog logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogged fails the test unless buf contains every fragment.
func AssertLogged(t *testing.T, buf *bytes.Buffer, fragments ...string) {
	t.Helper()
	out := buf.String()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			t.Fatalf("expected log to contain %q, got:\n%s", f, out)
		}
	}
}
