package rose

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestSessionUpdateLogsFrame(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	pts := Sample(Params{K: 3, A: 1, Points: 600})
	sess, err := NewSession(pts, NewSchedule(len(pts), 1), &recordingSurface{})
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	sess.Update(0)

	out := buf.String()
	if !strings.Contains(out, "rose: frame") {
		t.Errorf("expected frame log, got: %s", out)
	}
	if !strings.Contains(out, "revealed=2") {
		t.Errorf("expected revealed=2 in log, got: %s", out)
	}
}
