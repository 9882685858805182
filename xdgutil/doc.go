// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package xdgutil resolves the freedesktop.org default web browser.
//
// On desktop Linux the authoritative answer to "which browser did the user
// pick" lives in the XDG settings, not in PATH. This package digs it out in
// two steps:
//
//  1. ask `xdg-settings get default-web-browser` for the desktop-entry name
//     (e.g. "firefox.desktop")
//  2. locate that entry under the XDG data directories and parse its
//     [Desktop Entry] section per the desktop-entry spec
//     (https://specifications.freedesktop.org/desktop-entry-spec/latest)
//
// The parsed entry yields the Exec command line with %u/%U/%f/%F field
// codes, whether the entry is hidden, and whether it needs a terminal,
// which the launch layer maps onto its blocking policy.
package xdgutil
