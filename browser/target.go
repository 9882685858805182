// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Target is a validated launch destination: a URL, or a local file path
// already converted to a file:// URL.
type Target struct {
	u *url.URL
}

// ParseTarget interprets raw as a URL when it parses with a scheme, and as
// a local file path otherwise. File paths are absolutized; they do not have
// to exist (the browser will report that better than we can).
func ParseTarget(raw string) (*Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty target", ErrInvalidTarget)
	}

	if u, err := url.Parse(raw); err == nil && looksLikeURL(u) {
		return &Target{u: u}, nil
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	p := filepath.ToSlash(abs)
	// Windows absolute paths ("C:/...") still need the rooted-URL form.
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return &Target{u: &url.URL{Scheme: "file", Path: p}}, nil
}

// looksLikeURL distinguishes real URLs from things url.Parse technically
// accepts. Single-letter schemes are Windows drive letters ("C:\...") and
// must be treated as paths.
func looksLikeURL(u *url.URL) bool {
	return len(u.Scheme) > 1
}

// URL returns the parsed URL.
func (t *Target) URL() *url.URL { return t.u }

// Scheme returns the URL scheme.
func (t *Target) Scheme() string { return t.u.Scheme }

// IsHTTP reports whether the target is an http or https URL.
func (t *Target) IsHTTP() bool {
	return t.u.Scheme == "http" || t.u.Scheme == "https"
}

// HTTPURL returns the target string, failing for non-http(s) targets.
// Strategies restricted to web URLs (wasm, Flatpak, WSL shells) use it.
func (t *Target) HTTPURL() (string, error) {
	if !t.IsHTTP() {
		return "", fmt.Errorf("%w: only http/https targets are supported here, got %q", ErrInvalidTarget, t.u.Scheme)
	}
	return t.u.String(), nil
}

// String renders the target as passed to launchers.
func (t *Target) String() string { return t.u.String() }
