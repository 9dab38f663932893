package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("table", "orders").Int("rows", 200).Msg("Inserted rows")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["table"] != "orders" {
		t.Errorf("Expected table 'orders', got %v", entry["table"])
	}
	if entry["message"] != "Inserted rows" {
		t.Errorf("Expected message 'Inserted rows', got %v", entry["message"])
	}
}

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("Warn message should be logged at warn level")
	}
}

func TestInitInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "loud", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("debug")
	Info().Msg("info")

	out := buf.String()
	if strings.Contains(out, "\"message\":\"debug\"") {
		t.Error("Debug message should be filtered with fallback info level")
	}
	if !strings.Contains(out, "info") {
		t.Error("Info message should be logged with fallback info level")
	}
}
