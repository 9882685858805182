// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build windows

package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartArgs(t *testing.T) {
	args := startArgs("https://example.com/?a=1&b=2")

	// The window-title slot must be the empty string: any quote characters
	// in the Go argument would get re-escaped on the child command line and
	// start would no longer see an empty quoted title.
	assert.Equal(t, []string{"/c", "start", "", "https://example.com/?a=1^&b=2"}, args)
}

func TestEscapeCmdURLWindows(t *testing.T) {
	assert.Equal(t, "https://example.com/?a=1^&b=2", escapeCmdURL("https://example.com/?a=1&b=2"))
	assert.Equal(t, "a^^b", escapeCmdURL("a^b"))
	assert.Equal(t, "plain", escapeCmdURL("plain"))
}
