// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/browsekit/browse-core/registry"
)

// Browser identifies which browser a launch should target.
type Browser string

const (
	// BrowserDefault uses the system default browser.
	BrowserDefault Browser = "default"

	// GUI browsers.
	BrowserFirefox          Browser = "firefox"
	BrowserChrome           Browser = "chrome"
	BrowserChromium         Browser = "chromium"
	BrowserSafari           Browser = "safari"
	BrowserOpera            Browser = "opera"
	BrowserEdge             Browser = "edge"
	BrowserInternetExplorer Browser = "internet-explorer"
	BrowserWebPositive      Browser = "webpositive"

	// Text-mode browsers; these run in the terminal and block.
	BrowserLynx   Browser = "lynx"
	BrowserW3M    Browser = "w3m"
	BrowserELinks Browser = "elinks"
)

// ValidBrowsers returns all built-in browser values.
func ValidBrowsers() []Browser {
	return []Browser{
		BrowserDefault,
		BrowserFirefox, BrowserChrome, BrowserChromium, BrowserSafari,
		BrowserOpera, BrowserEdge, BrowserInternetExplorer, BrowserWebPositive,
		BrowserLynx, BrowserW3M, BrowserELinks,
	}
}

// ParseBrowser resolves a user-supplied name to a Browser. The empty string
// means the default browser. Names registered in the launcher registry are
// accepted alongside the built-in values.
func ParseBrowser(s string) (Browser, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return BrowserDefault, nil
	}
	for _, b := range ValidBrowsers() {
		if name == string(b) {
			return b, nil
		}
	}
	if _, ok := registry.Lookup(name); ok {
		return Browser(name), nil
	}
	return "", fmt.Errorf("%w: unknown browser %q (valid: %s)", ErrNotSupported, s, FormatValidBrowsers())
}

// FormatValidBrowsers returns a comma-separated list of built-in browsers.
func FormatValidBrowsers() string {
	browsers := ValidBrowsers()
	strs := make([]string, len(browsers))
	for i, b := range browsers {
		strs[i] = string(b)
	}
	return strings.Join(strs, ", ")
}

// IsTextMode reports whether the browser runs in the terminal, which makes
// launches block until it exits.
func (b Browser) IsTextMode() bool {
	switch b {
	case BrowserLynx, BrowserW3M, BrowserELinks:
		return true
	}
	if entry, ok := registry.Lookup(string(b)); ok {
		return entry.Console
	}
	return false
}

// DisplayName returns a human-readable name for user-facing output.
func (b Browser) DisplayName() string {
	switch b {
	case BrowserDefault:
		return "default browser"
	case BrowserChrome:
		return "Google Chrome"
	case BrowserInternetExplorer:
		return "Internet Explorer"
	case BrowserEdge:
		return "Microsoft Edge"
	case BrowserFirefox, BrowserChromium, BrowserSafari, BrowserOpera, BrowserWebPositive:
		return strings.ToUpper(string(b)[:1]) + string(b)[1:]
	default:
		return string(b)
	}
}

// existenceProbeURL is only ever resolved, never opened: Exists uses it to
// drive a dry-run launch.
const existenceProbeURL = "https://example.com"

// Exists reports whether this browser can be launched on the current
// system. It performs a dry-run open, so nothing is actually spawned.
func (b Browser) Exists() bool {
	opts := NewOptions().WithDryRun(true).WithSuppressOutput(true)
	return OpenWith(context.Background(), b, existenceProbeURL, opts) == nil
}

// textLaunchers lists commands known to be text-mode browsers. Launchers
// resolved from the environment or desktop entries are matched against it
// to decide the blocking policy.
var textLaunchers = []string{
	"lynx", "links", "links2", "elinks", "w3m", "eww", "netrik", "retawq", "curl",
}

// isTextLauncher reports whether the resolved launcher path refers to a
// known text-mode browser.
func isTextLauncher(path string) bool {
	base := path
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		base = path[idx+1:]
	}
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")
	for _, name := range textLaunchers {
		if base == name {
			return true
		}
	}
	return false
}
