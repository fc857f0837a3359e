package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.level); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestInitWithFile(t *testing.T) {
	defer Discard()

	path := filepath.Join(t.TempDir(), "picanim.log")
	if err := InitWithFileConfig("debug", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("InitWithFileConfig failed: %v", err)
	}
	Sugar.Debugf("[Test] picture %d ready", 7)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "[Test] picture 7 ready") {
		t.Errorf("Log file does not contain the message: %q", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	defer Discard()

	path := filepath.Join(t.TempDir(), "warn.log")
	if err := InitWithFileConfig("warn", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("InitWithFileConfig failed: %v", err)
	}
	Sugar.Infof("[Test] hidden")
	Sugar.Warnf("[Test] shown")
	Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("Warn message should be written at warn level")
	}
}

func TestDiscard(t *testing.T) {
	Discard()
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected no-op logger after Discard")
	}
}
