// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	SetupLogger(true, false)
	SetOutput(&buf)
	defer SetupLogger(false, false)

	slog.Debug("debug message", "key", "value")
	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("expected debug message in output, got: %q", buf.String())
	}
}

func TestSetupLoggerInfoSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer

	SetupLogger(false, false)
	SetOutput(&buf)

	slog.Debug("hidden")
	slog.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be suppressed at info level, got: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("expected info message in output, got: %q", out)
	}
}

func TestSetupLoggerStructured(t *testing.T) {
	var buf bytes.Buffer

	SetupLogger(false, true)
	SetOutput(&buf)
	defer SetupLogger(false, false)

	slog.Info("json message", "port", 8080)

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected JSON output, got: %q", out)
	}
	if !strings.Contains(out, `"json message"`) {
		t.Errorf("expected quoted message in JSON output, got: %q", out)
	}
}

func TestIsDebugEnabledFromEnv(t *testing.T) {
	SetupLogger(false, false)
	t.Setenv(EnvDebug, "true")

	if !IsDebugEnabled() {
		t.Error("IsDebugEnabled() = false with BROWSE_DEBUG=true")
	}
}

func TestIsDebugEnabledProgrammatic(t *testing.T) {
	t.Setenv(EnvDebug, "")

	SetupLogger(true, false)
	defer SetupLogger(false, false)

	if !IsDebugEnabled() {
		t.Error("IsDebugEnabled() = false after SetupLogger(true, ...)")
	}
}

func TestLoggerReturnsNonNil(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
}
