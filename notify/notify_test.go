// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package notify

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.AppName != "browse" {
		t.Errorf("AppName = %q, want %q", config.AppName, "browse")
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want %v", config.Timeout, 5*time.Second)
	}
}

func TestNew(t *testing.T) {
	notifier, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}

	if !notifier.IsAvailable() {
		t.Error("IsAvailable() = false, want true")
	}
	if err := notifier.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
