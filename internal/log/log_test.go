package log

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("hello %s %d", "world", 42)
		if got := buf.String(); got != "hello world 42" {
			t.Errorf("Printf output = %q, want %q", got, "hello world 42")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("writes key-value pairs when verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("filtering input", "style", "int", "len", 5)
		got := buf.String()
		if !strings.Contains(got, "filtering input") {
			t.Errorf("Debug output = %q, want to contain message", got)
		}
		if !strings.Contains(got, "style=int") {
			t.Errorf("Debug output = %q, want to contain style=int", got)
		}
		if !strings.Contains(got, "len=5") {
			t.Errorf("Debug output = %q, want to contain len=5", got)
		}
	})

	t.Run("drops orphan key", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("msg", "key1", "val1", "orphan")
		got := buf.String()
		if !strings.Contains(got, "key1=val1") {
			t.Errorf("Debug output = %q, want to contain key1=val1", got)
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should not contain orphan key", got)
		}
	})

	t.Run("suppressed when not verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("should not appear", "key", "val")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Error("FromContext should return the attached logger")
		}
	})

	t.Run("missing logger is a no-op", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil")
		}
		if l.Writer() != io.Discard {
			t.Error("fallback logger should discard output")
		}
		l.Printf("does not panic")
	})
}

func TestNewFileLogger(t *testing.T) {
	t.Parallel()

	t.Run("writes json events to file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "debug.log")
		logger, closer, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		logger.Info().Str("input", "1.2.3").Msg("filtered")
		if err := closer.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log file: %v", err)
		}
		if !strings.Contains(string(data), `"input":"1.2.3"`) {
			t.Errorf("log file = %q, want to contain input field", data)
		}
	})

	t.Run("unwritable path errors", func(t *testing.T) {
		t.Parallel()
		_, _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "debug.log"))
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
	})
}
