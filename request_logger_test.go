package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := &ZerologLogger{Logger: zerolog.New(&buf)}

	logger.Errorf("boom: %s", "refused")
	logger.Warnf("status %d", 401)
	logger.Debugf("GET %s", "/cameras")

	out := buf.String()

	if !strings.Contains(out, "boom: refused") {
		t.Errorf("expected error message in output, got: %s", out)
	}
	if !strings.Contains(out, "status 401") {
		t.Errorf("expected warn message in output, got: %s", out)
	}
	if !strings.Contains(out, "GET /cameras") {
		t.Errorf("expected debug message in output, got: %s", out)
	}
}
