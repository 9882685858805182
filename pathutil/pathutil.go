// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no matching executable exists.
var ErrNotFound = fmt.Errorf("command not found")

// Resolve locates the executable for a launcher command name.
//
// If name contains a path separator it is treated as an explicit path and is
// returned only if it refers to an executable regular file; no PATH search is
// performed. Otherwise each PATH entry is probed in order and the first
// executable match wins.
//
// Returns the resolved path, or ErrNotFound (possibly wrapped) if nothing
// usable exists.
func Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}

	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutableFile(name) {
			return name, nil
		}
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		for _, candidate := range executableNames(name) {
			p := filepath.Join(dir, candidate)
			if isExecutableFile(p) {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Exists reports whether an executable for name can be resolved.
func Exists(name string) bool {
	_, err := Resolve(name)
	return err == nil
}

// isExecutableFile reports whether path is a regular file the current user
// may execute. The executability test is platform specific.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return isExecutableMode(info)
}
