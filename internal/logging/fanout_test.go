package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFanoutDelivery(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewFanout(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(handler)
	logger.Info("info message")
	logger.Error("error message")

	if !strings.Contains(a.String(), "info message") || !strings.Contains(a.String(), "error message") {
		t.Errorf("info-level handler missing records: %s", a.String())
	}
	if strings.Contains(b.String(), "info message") {
		t.Errorf("error-level handler received info record: %s", b.String())
	}
	if !strings.Contains(b.String(), "error message") {
		t.Errorf("error-level handler missing error record: %s", b.String())
	}
}

func TestFanoutEnabled(t *testing.T) {
	handler := NewFanout(
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info must be disabled when all handlers require error")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error must be enabled")
	}
}

type failingHandler struct{ err error }

func (h failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h failingHandler) WithGroup(string) slog.Handler             { return h }

// A sink failure must not stop delivery to the remaining handlers.
func TestFanoutSurvivesFailingSink(t *testing.T) {
	sinkErr := errors.New("sink down")
	var out bytes.Buffer
	handler := NewFanout(
		failingHandler{err: sinkErr},
		slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "still delivered", 0)
	err := handler.Handle(context.Background(), rec)
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected the sink error to surface, got %v", err)
	}
	if !strings.Contains(out.String(), "still delivered") {
		t.Errorf("healthy handler missed the record: %s", out.String())
	}
}

func TestLevelPerEnvironment(t *testing.T) {
	if Level("development") != slog.LevelDebug {
		t.Error("development must log at debug")
	}
	if Level("production") != slog.LevelInfo {
		t.Error("production must log at info")
	}
	if Level("") != slog.LevelInfo {
		t.Error("unknown env must default to info")
	}
}
