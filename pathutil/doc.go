// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package pathutil resolves browser launcher commands to executables.
//
// Launcher candidates come from several sources (built-in per-platform
// lists, the BROWSER environment variable, desktop-entry Exec lines, user
// registry entries) and may be bare command names or explicit paths. This
// package applies one resolution rule to all of them:
//
//   - a name containing a path separator is taken literally and must point
//     at an executable regular file
//   - a bare name is searched across PATH entries in order, honoring the
//     executable permission bits on Unix and executable extensions on
//     Windows
//
// # Example Usage
//
//	path, err := pathutil.Resolve("xdg-open")
//	if err != nil {
//	    // no such launcher on this system, try the next candidate
//	}
//	cmd := exec.Command(path, url)
package pathutil
