package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Debug(nil, "d")
	Info(nil, "i")
	Warn(nil, "w")
	Error(nil, "e", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Writer: &buf})

	Error(logger, "fetch failed", errors.New("boom"), FieldProvider, "bbref")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "provider=bbref") {
		t.Fatalf("expected error and provider fields, got %q", out)
	}
}
