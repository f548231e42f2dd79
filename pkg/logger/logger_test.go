package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/niveshlabs/nivesh/pkg/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("New() returned nil")
	}

	// Chaining must return independent loggers
	child := log.WithField("component", "test")
	if child == log {
		t.Error("WithField() should return a new logger")
	}

	withErr := log.WithError(nil)
	if withErr == nil {
		t.Error("WithError() returned nil")
	}

	withFields := log.WithFields(map[string]interface{}{"a": 1, "b": "two"})
	if withFields == nil {
		t.Error("WithFields() returned nil")
	}
}

func TestNewConsoleFormat(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "debug",
		LogFormat: "console",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("New() returned nil")
	}

	// Should not panic
	log.Debug("debug message")
	log.Infof("formatted %s", "message")
}
