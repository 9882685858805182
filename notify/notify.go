// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package notify provides cross-platform OS notification support for launch
// outcomes.
package notify

import (
	"context"
	"errors"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title.
	Title string

	// Message is the notification body.
	Message string

	// Severity indicates the notification severity: "critical", "warning"
	// or "info".
	Severity string

	// Timestamp when the notification was created.
	Timestamp time.Time
}

// Notifier is the interface for platform-specific notification systems.
type Notifier interface {
	// Send sends a notification to the OS notification system.
	Send(ctx context.Context, notification Notification) error

	// IsAvailable returns true if OS notifications are available.
	IsAvailable() bool

	// Close cleans up notification system resources.
	Close() error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications.
	AppName string

	// Timeout for notification operations.
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "browse",
		Timeout: 5 * time.Second,
	}
}

// New creates a new platform-specific notifier.
func New(config Config) (Notifier, error) {
	return newPlatformNotifier(config)
}

var (
	ErrNotAvailable       = errors.New("OS notifications not available")
	ErrNotificationFailed = errors.New("failed to send notification")
)
