package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorAppendsErrField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "failed", errors.New("boom"))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}
