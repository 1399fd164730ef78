package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	cfg.Writer = buf
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("parsing log line %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func TestNew_RejectsBadLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_RejectsBadFormat(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "warn"})

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line must be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn line must pass at warn level")
	}
}

func TestLogger_SetLevelAtRuntime(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info"})

	logger.Debug("before")
	if err := logger.SetLevel("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("debug line must be filtered before the level change")
	}
	if !strings.Contains(out, "after") {
		t.Error("debug line must pass after the level change")
	}
	if logger.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", logger.Level())
	}
}

func TestLogger_ContextFields(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info"})

	ctx := WithRequestID(context.Background(), "corr-1")
	ctx = WithOperation(ctx, "GetMatch")
	logger.InfoContext(ctx, "dispatching")

	entry := lastLine(t, buf)
	if entry["request_id"] != "corr-1" {
		t.Errorf("expected request_id corr-1, got %v", entry["request_id"])
	}
	if entry["operation"] != "GetMatch" {
		t.Errorf("expected operation GetMatch, got %v", entry["operation"])
	}
}

func TestLogger_RedactsSensitiveKeys(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", RedactSecrets: true})

	logger.Info("inbound request",
		"authorization", "Bearer abc123",
		"path", "/proxy/execute",
	)

	entry := lastLine(t, buf)
	if entry["authorization"] != "***" {
		t.Errorf("authorization must be masked, got %v", entry["authorization"])
	}
	if entry["path"] != "/proxy/execute" {
		t.Errorf("path must be untouched, got %v", entry["path"])
	}
}

func TestLogger_RedactsPatternsInValues(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", RedactSecrets: true})

	logger.Info("upstream call", "headers", "Bearer secrettoken and more")

	entry := lastLine(t, buf)
	value, _ := entry["headers"].(string)
	if strings.Contains(value, "secrettoken") {
		t.Errorf("bearer token must be scrubbed, got %q", value)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "text", Writer: buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("expected text format output, got %q", buf.String())
	}
}

func TestWith_CarriesFields(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info"})

	child := logger.With("component", "dispatch")
	child.Info("ready")

	entry := lastLine(t, buf)
	if entry["component"] != "dispatch" {
		t.Errorf("expected component field, got %v", entry["component"])
	}
}
