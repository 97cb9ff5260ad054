package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestVerbosityLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbosityLevel(tt.verbosity); got != tt.wantLevel {
				t.Errorf("VerbosityLevel(%d) = %v, want %v", tt.verbosity, got, tt.wantLevel)
			}
		})
	}
}

func TestSetupVerbosity(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	SetupVerbosity(2)
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("SetupVerbosity(2) set level to %v, want debug", zerolog.GlobalLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := Setup("info", FormatJSON, &buf); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	logger := GetLogger("classifier")
	logger.Info().Str("title", "Soda 24 Cans").Msg("classified")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "classifier" {
		t.Errorf("component = %v, want classifier", entry["component"])
	}
	if entry["title"] != "Soda 24 Cans" {
		t.Errorf("title = %v, want Soda 24 Cans", entry["title"])
	}
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := Setup("warn", FormatJSON, &buf); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message written at warn level: %q", buf.String())
	}
}

func TestSetup_Errors(t *testing.T) {
	if err := Setup("loud", FormatJSON, nil); err == nil {
		t.Error("Setup() with invalid level: error = nil, want error")
	}
	if err := Setup("info", "xml", nil); err == nil {
		t.Error("Setup() with invalid format: error = nil, want error")
	}
}

func TestLogDuration(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := Setup("debug", FormatJSON, &buf); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	buf.Reset()

	LogDuration(GetLogger("usecase"), time.Now().Add(-time.Second), "classify_batch")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["operation"] != "classify_batch" {
		t.Errorf("operation = %v, want classify_batch", entry["operation"])
	}
	if d, ok := entry["duration"].(float64); !ok || d < 1000 {
		t.Errorf("duration = %v, want at least 1000ms", entry["duration"])
	}
}
