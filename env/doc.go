// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package env inspects the process environment for browser launching.
//
// It answers three questions the per-platform launch strategies ask:
//
//   - Did the user configure launcher commands via the BROWSER environment
//     variable, and what command lines do they expand to for a given URL?
//   - Which desktop environment (GNOME, KDE, MATE, XFCE) or container-like
//     session (WSL, Flatpak) are we running under?
//   - Is a graphical session available at all?
//
// # BROWSER expansion
//
// BROWSER holds ':'-separated command templates. Within each template "%s"
// is replaced by the URL, "%c" by ':', and "%%" by '%'. If a template does
// not mention "%s", the URL is appended as a trailing argument:
//
//	BROWSER="firefox -new-tab %s:links"
//
// expands for https://example.com into
//
//	firefox -new-tab https://example.com
//	links https://example.com
package env
