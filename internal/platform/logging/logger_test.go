package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesFieldsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "bank")

	logger.Warn("model role unavailable", "role", "score", "attempt", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "bank" || fields["role"] != "score" || fields["attempt"] != int64(2) {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestLogger_Mirror(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core)).With("service", "predictor")

	var (
		mu   sync.Mutex
		msgs []string
		got  []any
	)
	SetMirror(func(_ context.Context, _ Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, msg)
		got = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("filtered by level")
	logger.InfoContext(context.Background(), "prediction stored", "prediction_id", "p-1")

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "prediction stored" {
		t.Fatalf("expected only the info record to be mirrored, got %v", msgs)
	}
	if len(got) != 4 || got[0] != "service" || got[3] != "p-1" {
		t.Fatalf("expected bound args before call args, got %v", got)
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("no-op")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}

func TestLogger_OddArgsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Error("history lookup failed", "error", errors.New("db down"), "dangling")

	fields := logs.All()[0].ContextMap()
	if fields["error"] != "db down" || fields["!badkey"] != "dangling" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestNew_WritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf}).Named("modelstore")

	logger.Debug("hidden")
	logger.Info("manifest loaded", "artifacts", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %s", out)
	}
	for _, want := range []string{`"msg":"manifest loaded"`, `"artifacts":3`, `"logger":"modelstore"`, `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": LevelDebug, " WARNING ": LevelWarn, "error": LevelError, "verbose": LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
