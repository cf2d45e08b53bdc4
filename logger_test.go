package daxa

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLogFailure(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if err := logFailure("create buffer", ResultSuccess); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("success logged: %s", buf.String())
	}

	err := logFailure("create buffer", ResultErrorOutOfDeviceMemory)
	if err != ResultErrorOutOfDeviceMemory {
		t.Errorf("got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "op=\"create buffer\"") || !strings.Contains(out, "code=-2") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestLifecycleLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer SetLogger(nil)

	lib := newFakeLibrary()
	inst, err := NewInstance(lib, DefaultInstanceInfo())
	if err != nil {
		t.Fatal(err)
	}
	d, err := inst.CreateDevice(DefaultDeviceInfo())
	if err != nil {
		t.Fatal(err)
	}
	d.Destroy()
	inst.Destroy()

	if buf.Len() != 0 {
		t.Errorf("lifecycle logged above debug: %s", buf.String())
	}
}
