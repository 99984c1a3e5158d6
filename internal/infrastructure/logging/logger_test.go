package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"devtoolsx/internal/testutils"
)

type fakeCommandError struct {
	message   string
	code      string
	context   map[string]string
	timestamp time.Time
}

func (f *fakeCommandError) Error() string                 { return f.message }
func (f *fakeCommandError) GetCode() string               { return f.code }
func (f *fakeCommandError) GetContext() map[string]string { return f.context }
func (f *fakeCommandError) GetTimestamp() time.Time       { return f.timestamp }

func decodeEntry(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log entry: %v, output: %q", err, line)
	}
	return entry
}

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger() returned nil")
	}
	if _, ok := logger.(*DefaultLogger); !ok {
		t.Errorf("NewDefaultLogger() returned %T, expected *DefaultLogger", logger)
	}
}

func TestDefaultLogger_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug")

	tests := []struct {
		name           string
		logFunc        func(string, ...interface{})
		message        string
		fields         []interface{}
		levelToken     string
		expectedFields map[string]interface{}
	}{
		{"Debug", logger.Debug, "debug message", []interface{}{"key", "value"}, "debug", map[string]interface{}{"key": "value"}},
		{"Info", logger.Info, "info message", []interface{}{"count", 42}, "info", map[string]interface{}{"count": float64(42)}},
		{"Warn", logger.Warn, "warn message", nil, "warn", map[string]interface{}{}},
		{"Error", logger.Error, "error message", []interface{}{"error", "test error"}, "error", map[string]interface{}{"error": "test error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(tt.message, tt.fields...)

			entry := decodeEntry(t, strings.TrimSpace(buf.String()))

			if entry["time"] == nil {
				t.Error("Expected log entry to have time field")
			}
			if entry["level"] != tt.levelToken {
				t.Errorf("Expected level %q, got %q", tt.levelToken, entry["level"])
			}
			if entry["message"] != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, entry["message"])
			}

			fields, ok := entry["fields"].(map[string]interface{})
			if !ok {
				t.Fatalf("Expected fields to be a map, got %T", entry["fields"])
			}
			for key, want := range tt.expectedFields {
				if got, exists := fields[key]; !exists || got != want {
					t.Errorf("Expected field %q to be %v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Expected debug and info to be filtered, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected warn entry, got %q", buf.String())
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "loud")

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("Expected info level, got %q", out)
	}
}

func TestFieldsToMap_Malformed(t *testing.T) {
	got := fieldsToMap([]interface{}{1, "one", "dangling"})

	if got["field_0"] != 1 || got["field_0_value"] != "one" {
		t.Errorf("Unexpected non-string key handling: %v", got)
	}
	if got["field_1"] != "dangling" {
		t.Errorf("Unexpected dangling value handling: %v", got)
	}
}

func TestLogCommandError_WithCommandError(t *testing.T) {
	rec := &testutils.RecordingLogger{}

	cmdErr := &fakeCommandError{
		message:   "cannot decode base64",
		code:      "DECODE",
		context:   map[string]string{"format": "base64"},
		timestamp: time.Now(),
	}

	LogCommandError(rec, fmt.Errorf("wrapped: %w", cmdErr), "decode_base64", map[string]interface{}{"input_len": 3})

	calls := rec.Calls("ERROR")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 error call, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Msg, "Command error: wrapped: cannot decode base64") {
		t.Errorf("Unexpected message %q", calls[0].Msg)
	}

	fieldsMap := testutils.FieldsToMap(t, calls[0].Fields)
	expected := map[string]interface{}{
		"operation":  "decode_base64",
		"error_code": "DECODE",
		"format":     "base64",
		"input_len":  3,
	}
	for key, want := range expected {
		if got, exists := fieldsMap[key]; !exists || got != want {
			t.Errorf("Field %q: expected %v, got %v", key, want, got)
		}
	}
}

func TestLogCommandError_WithRegularError(t *testing.T) {
	rec := &testutils.RecordingLogger{}

	LogCommandError(rec, errors.New("regular error"), "run", nil)

	calls := rec.Calls("ERROR")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 error call, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Msg, "Unexpected error: regular error") {
		t.Errorf("Unexpected message %q", calls[0].Msg)
	}
	if testutils.FieldsToMap(t, calls[0].Fields)["operation"] != "run" {
		t.Error("Expected operation field to be 'run'")
	}
}

func TestLogCommandError_NilError(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	LogCommandError(rec, nil, "run", nil)

	if len(rec.Calls("")) != 0 {
		t.Error("Expected nil errors to be ignored")
	}
}

func TestLogCommandOperation(t *testing.T) {
	rec := &testutils.RecordingLogger{}

	LogCommandOperation(rec, "pretty_json", 150*time.Millisecond, map[string]interface{}{"bytes": 12})

	calls := rec.Calls("DEBUG")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 debug call, got %d", len(calls))
	}

	fieldsMap := testutils.FieldsToMap(t, calls[0].Fields)
	if fieldsMap["duration_ms"] != int64(150) || fieldsMap["bytes"] != 12 {
		t.Errorf("Unexpected fields: %v", fieldsMap)
	}
}
