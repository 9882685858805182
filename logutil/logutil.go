// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package logutil configures structured logging for browse-core packages.
// All packages log through log/slog; this package owns handler setup, the
// debug toggle, and the BROWSE_DEBUG environment variable.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Environment variable names for logging configuration.
const (
	// EnvDebug enables debug logging when set to "true".
	EnvDebug = "BROWSE_DEBUG"
)

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	debugEnabled bool
	isStructured bool
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger.
//
// Parameters:
//   - debug: when true, enables debug-level logging
//   - structured: when true, outputs JSON-formatted logs; otherwise text
//
// The logger writes to stderr by default.
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	debugEnabled = debug
	isStructured = structured
	rebuildLocked()
}

// SetOutput redirects log output, rebuilding the handler. Useful for tests.
// This function is safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuildLocked()
}

// rebuildLocked recreates the global logger from the current settings.
// Caller must hold mu.
func rebuildLocked() {
	level := slog.LevelInfo
	if debugEnabled {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// IsDebugEnabled returns true if debug logging is enabled, either
// programmatically or via the BROWSE_DEBUG environment variable.
// This function is safe for concurrent use.
func IsDebugEnabled() bool {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	return enabled || os.Getenv(EnvDebug) == "true"
}

// Logger returns the underlying slog.Logger for advanced usage.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
