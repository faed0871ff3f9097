package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"bogus": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogRejectedLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Level: "debug"})

	l.LogRejectedLine("in.gff3", 12, errors.New("invalid strand"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["event"] != "line_rejected" || e["path"] != "in.gff3" || e["line"] != float64(12) {
		t.Errorf("unexpected entry: %v", e)
	}
	if e["error"] != "invalid strand" {
		t.Errorf("error field = %v", e["error"])
	}
	if e["level"] != "warn" {
		t.Errorf("level = %v, want warn", e["level"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Level: "error"})

	l.LogFileDone("a.gff", 10, 9, 1, 0, time.Millisecond)
	l.Info().Msg("hidden")

	if buf.Len() != 0 {
		t.Errorf("info output should be filtered at error level, got %q", buf.String())
	}

	l.Error().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error output missing: %q", buf.String())
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf}).Component("convert")
	l.LogFileDone("a.gff", 3, 2, 1, 1, time.Second)

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["component"] != "convert" {
		t.Errorf("component = %v", entries[0]["component"])
	}
	if entries[0]["level"] != "warn" {
		t.Errorf("file with rejected lines should log at warn, got %v", entries[0]["level"])
	}
}

func TestNop(t *testing.T) {
	Nop().LogRejectedLine("x", 1, errors.New("ignored"))
}

func TestWithCaller(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Output: &buf, WithCaller: true}).Info().Msg("hello")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	caller, _ := entries[0]["caller"].(string)
	if !strings.Contains(caller, "logger_test.go") {
		t.Errorf("caller = %q, want logger_test.go", caller)
	}

	buf.Reset()
	New(Config{Output: &buf}).Info().Msg("hello")
	if _, ok := decodeLines(t, &buf)[0]["caller"]; ok {
		t.Error("caller field present without WithCaller")
	}
}
