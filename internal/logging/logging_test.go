package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	Set(nil)
	if L() == nil {
		t.Fatalf("expected a logger")
	}
	L().Info("dropped")
}

func TestSetReplacesLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	L().Info("request", zap.String("path", "/api/hotels"))

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "request" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if got := entries[0].ContextMap()["path"]; got != "/api/hotels" {
		t.Fatalf("expected path field, got %v", got)
	}
}

func TestSetupDebug(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	l, err := Setup(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("debug logger must enable debug level")
	}
}
