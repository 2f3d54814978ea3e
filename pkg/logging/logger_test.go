package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		baseDir   string
		sessionID string
	}{
		{"valid directory and session ID", t.TempDir(), "test-session-123"},
		{"creates directories if not exist", filepath.Join(t.TempDir(), "nested", "path"), "session-456"},
		{"generated session ID", t.TempDir(), NewSessionID()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.baseDir, tt.sessionID)
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			defer logger.Close()

			if logger.SessionID() != tt.sessionID {
				t.Errorf("SessionID() = %v, want %v", logger.SessionID(), tt.sessionID)
			}
			if logger.minLevel != LevelInfo {
				t.Errorf("minLevel = %v, want %v", logger.minLevel, LevelInfo)
			}
			for _, name := range []string{"errors.jsonl", "focus.jsonl", filepath.Join("sessions", tt.sessionID+".jsonl")} {
				if _, err := os.Stat(filepath.Join(tt.baseDir, name)); err != nil {
					t.Errorf("expected %s to exist: %v", name, err)
				}
			}
		})
	}
}

func TestNewLoggerInvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLogger(file, "s"); err == nil {
		t.Fatal("expected error when baseDir is a file")
	}
}

func TestLogRoutesByLevelAndCategory(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "s1")
	if err != nil {
		t.Fatal(err)
	}

	if err := logger.Info(CategoryFocus, "trap.activate", "activated", map[string]any{"elements": 3}); err != nil {
		t.Fatal(err)
	}
	if err := logger.Error(CategoryLifecycle, "app.run", "failed", nil); err != nil {
		t.Fatal(err)
	}
	if err := logger.Info(CategoryUI, "layer.push", "", nil); err != nil {
		t.Fatal(err)
	}
	logger.Close()

	session, err := ReadRecentEvents(filepath.Join(dir, "sessions", "s1.jsonl"), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(session) != 3 {
		t.Fatalf("session events = %d, want 3", len(session))
	}
	if session[0].SessionID != "s1" || session[0].Timestamp.IsZero() {
		t.Errorf("session and timestamp should be filled: %+v", session[0])
	}

	focus, _ := ReadRecentEvents(filepath.Join(dir, "focus.jsonl"), 10)
	if len(focus) != 1 || focus[0].EventType != "trap.activate" {
		t.Errorf("focus log = %+v", focus)
	}

	errs, _ := ReadRecentEvents(filepath.Join(dir, "errors.jsonl"), 10)
	if len(errs) != 1 || errs[0].Level != LevelError {
		t.Errorf("error log = %+v", errs)
	}
}

func TestLogKeepsTimestampAndTrapID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "s")

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := logger.Log(Event{Timestamp: ts, Level: LevelInfo, Category: CategoryFocus, EventType: "x", TrapID: "trap-1"}); err != nil {
		t.Fatal(err)
	}

	var event Event
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatal(err)
	}
	if !event.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", event.Timestamp, ts)
	}
	if event.TrapID != "trap-1" {
		t.Errorf("TrapID = %q", event.TrapID)
	}
}

func TestSetMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "s")

	logger.Debug(CategoryFocus, "dropped", "", nil)
	if buf.Len() != 0 {
		t.Fatal("debug should be dropped at info level")
	}

	logger.SetMinLevel(LevelDebug)
	logger.Debug(CategoryFocus, "kept", "", nil)
	if !strings.Contains(buf.String(), `"type":"kept"`) {
		t.Errorf("debug event missing: %s", buf.String())
	}

	buf.Reset()
	logger.SetMinLevel(LevelError)
	logger.Warn(CategoryFocus, "dropped", "", nil)
	if buf.Len() != 0 {
		t.Error("warn should be dropped at error level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	if err := logger.Info(CategoryFocus, "x", "", nil); err != nil {
		t.Errorf("nil logger Info() = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("nil logger Close() = %v", err)
	}
	if logger.SessionID() != "" {
		t.Error("nil logger should have no session")
	}
}

func TestReadRecentEventsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	logger := NewWriterLogger(f, "s")
	for _, typ := range []string{"a", "b", "c"} {
		logger.Info(CategoryUI, typ, "", nil)
	}
	f.Close()

	events, err := ReadRecentEvents(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].EventType != "b" || events[1].EventType != "c" {
		t.Errorf("events = %+v", events)
	}

	if _, err := ReadRecentEvents(filepath.Join(t.TempDir(), "missing"), 1); err == nil {
		t.Error("expected error for missing file")
	}
}
