// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/browsekit/browse-core/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithInvalidTarget(t *testing.T) {
	err := OpenWith(context.Background(), BrowserDefault, "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTarget))
}

func TestOpenWithRegisteredLauncherNotInstalled(t *testing.T) {
	require.NoError(t, registry.Register(registry.Entry{
		Name:    "ghost-browser",
		Command: "/nonexistent/ghost-browser %s",
	}))
	defer registry.Default().Unregister("ghost-browser")

	opts := NewOptions().WithDryRun(true)
	err := OpenWith(context.Background(), Browser("ghost-browser"), "https://example.com", opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBrowser))
}

func TestOpenWithEmptyBrowserFallsBackToDefault(t *testing.T) {
	// An empty browser value must not be treated as a registered name.
	err := OpenWith(context.Background(), Browser(""), "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTarget))
}
