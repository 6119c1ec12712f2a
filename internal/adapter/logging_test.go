package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, test := range tests {
		if got := parseLogLevel(test.input); got != test.expected {
			t.Errorf("parseLogLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "reel.log")

	logger, err := SetupLogger(&LoggingConfig{File: logPath, Level: "DEBUG"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	logger.Info("played video", "videoID", "amazing_cats_video_id")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"videoID":"amazing_cats_video_id"`) {
		t.Errorf("log line missing attribute: %s", data)
	}
}

func TestSetupLoggerEmptyPath(t *testing.T) {
	logger, err := SetupLogger(&LoggingConfig{})
	if err != nil || logger == nil {
		t.Fatalf("SetupLogger with empty file = %v, %v", logger, err)
	}
}
