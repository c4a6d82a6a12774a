// Package testutil holds logging helpers shared by tests.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
)

// LogWriter returns an io.Writer that forwards each Write to t.Log.
func LogWriter(t testing.TB) io.Writer {
	return tbWriter{t}
}

type tbWriter struct{ t testing.TB }

func (w tbWriter) Write(b []byte) (int, error) {
	w.t.Helper()
	w.t.Logf("%s", bytes.TrimRight(b, "\n"))
	return len(b), nil
}

// Slogger returns a debug-level logger writing through t.Log.
func Slogger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(LogWriter(t), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// SlogBuffer returns a debug-level logger and the buffer it writes to.
func SlogBuffer() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// ExpectLog reports an error unless message occurs exactly n times in buf.
func ExpectLog(t testing.TB, buf *bytes.Buffer, message string, n int) {
	t.Helper()
	if got := bytes.Count(buf.Bytes(), []byte(message)); got != n {
		t.Errorf("logs mention %q %d times, want %d:\n%s", message, got, n, buf.Bytes())
	}
}
