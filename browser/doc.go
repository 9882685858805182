// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package browser opens URLs and local files in web browsers across
// platforms with one consistent contract.
//
// # Key Features
//
//   - Open a target in the system default browser or a specific named one
//     (GUI browsers like Firefox/Chrome/Safari, or text-mode browsers like
//     lynx and w3m)
//   - Targets may be URLs or local file paths; paths are absolutized and
//     converted to file:// URLs
//   - Uniform launch policy: GUI browsers are spawned detached and the call
//     returns immediately; text-mode browsers occupy the terminal and the
//     call blocks until they exit
//   - Options for output suppression, a target hint (new tab vs named
//     window, honored on wasm), and dry-run validation
//   - User-defined launchers registered via the registry package take
//     precedence over built-in named browsers
//
// # Platform Strategies
//
// The per-platform launch strategy is selected at compile time:
//
//   - Windows: `cmd /c start` with the URL caret-escaped; only the default
//     handler is available
//   - macOS: `open` (default) or `open -a <app>` (named browsers)
//   - Linux/BSD: ordered fallback across the BROWSER environment variable,
//     the xdg-settings default browser and its desktop entry, desktop
//     environment openers (kde-open, gio, exo-open, ...), WSL and Flatpak
//     handling, and finally x-www-browser
//   - js/wasm: window.open with the target hint
//   - everything else (android, ios, ...): ErrNotSupported
//
// # Example Usage
//
// Open a URL in the default browser:
//
//	if err := browser.Open("https://example.com"); err != nil {
//	    log.Printf("could not open browser: %v", err)
//	}
//
// Open in a specific browser with options:
//
//	opts := browser.NewOptions().WithSuppressOutput(false)
//	err := browser.OpenWith(ctx, browser.BrowserFirefox, "https://example.com", opts)
//
// Check availability without launching:
//
//	if browser.BrowserSafari.Exists() {
//	    // safari can be used on this system
//	}
//
// # Error Handling
//
// Failures are classified: ErrNoBrowser (no usable launcher was found),
// ErrLaunchFailed (a launcher ran and failed), ErrNotSupported (platform or
// browser not supported), ErrInvalidTarget (the target did not parse).
// Match them with errors.Is. There are no retries beyond advancing to the
// next launcher candidate, and no state is kept between calls.
package browser
