package internal

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetLogLevel(LogLevelDebug)
	if logLevel != LogLevelDebug {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetLogLevel(LogLevelError)
	if logLevel != LogLevelError {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelError", logLevel)
	}
}

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	originalLevel := logLevel
	originalLogger := logger
	defer func() {
		logLevel = originalLevel
		logger = originalLogger
	}()

	var buf bytes.Buffer
	logger = log.New(&buf, "", 0)

	SetLogLevel(LogLevelWarn)
	LogWarn("warn shows")
	LogInfo("info hidden")
	LogDebug("debug hidden")

	out := buf.String()
	if !strings.Contains(out, "[WARN] warn shows") {
		t.Errorf("warn message missing from output: %q", out)
	}
	if strings.Contains(out, "info hidden") || strings.Contains(out, "debug hidden") {
		t.Errorf("messages above the level leaked: %q", out)
	}
}
