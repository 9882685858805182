// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"testing"

	"github.com/browsekit/browse-core/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Browser
		wantErr bool
	}{
		{"empty means default", "", BrowserDefault, false},
		{"default", "default", BrowserDefault, false},
		{"firefox", "firefox", BrowserFirefox, false},
		{"case insensitive", "FireFox", BrowserFirefox, false},
		{"surrounding whitespace", "  chrome ", BrowserChrome, false},
		{"internet explorer", "internet-explorer", BrowserInternetExplorer, false},
		{"unknown", "netscape", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBrowser(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNotSupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBrowserRegistered(t *testing.T) {
	require.NoError(t, registry.Register(registry.Entry{
		Name:    "my-browser",
		Command: "/opt/my-browser/run %s",
	}))
	defer registry.Default().Unregister("my-browser")

	got, err := ParseBrowser("my-browser")
	require.NoError(t, err)
	assert.Equal(t, Browser("my-browser"), got)
}

func TestIsTextMode(t *testing.T) {
	assert.True(t, BrowserLynx.IsTextMode())
	assert.True(t, BrowserW3M.IsTextMode())
	assert.True(t, BrowserELinks.IsTextMode())
	assert.False(t, BrowserFirefox.IsTextMode())
	assert.False(t, BrowserDefault.IsTextMode())

	require.NoError(t, registry.Register(registry.Entry{
		Name:    "console-thing",
		Command: "console-thing %s",
		Console: true,
	}))
	defer registry.Default().Unregister("console-thing")
	assert.True(t, Browser("console-thing").IsTextMode())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "default browser", BrowserDefault.DisplayName())
	assert.Equal(t, "Google Chrome", BrowserChrome.DisplayName())
	assert.Equal(t, "Microsoft Edge", BrowserEdge.DisplayName())
	assert.Equal(t, "Internet Explorer", BrowserInternetExplorer.DisplayName())
	assert.Equal(t, "Firefox", BrowserFirefox.DisplayName())
	assert.Equal(t, "lynx", BrowserLynx.DisplayName())
}

func TestFormatValidBrowsers(t *testing.T) {
	formatted := FormatValidBrowsers()
	assert.Contains(t, formatted, "default")
	assert.Contains(t, formatted, "firefox")
	assert.Contains(t, formatted, "lynx")
}

func TestIsTextLauncher(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/usr/bin/lynx", true},
		{"/usr/local/bin/w3m", true},
		{`C:\tools\elinks.exe`, true},
		{"curl", true},
		{"links2", true},
		{"/usr/bin/firefox", false},
		{"/usr/bin/google-chrome", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isTextLauncher(tt.path), "path %q", tt.path)
	}
}
