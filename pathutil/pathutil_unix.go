// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build !windows

package pathutil

import "os"

// isExecutableMode checks the executable permission bits.
func isExecutableMode(info os.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}

// executableNames returns the candidate file names for a bare command name.
// On Unix the name is used as-is.
func executableNames(name string) []string {
	return []string{name}
}
