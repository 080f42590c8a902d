package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(slog.LevelInfo)
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestNewRespectsLevel(t *testing.T) {
	l := New(slog.LevelDebug)
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestLoggerAddsServiceAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, slog.LevelInfo)
	l.Info("order created", slog.String("token", "123456"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if entry["service"] != "canteen" || entry["token"] != "123456" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}
