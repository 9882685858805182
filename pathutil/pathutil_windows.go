// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build windows

package pathutil

import (
	"os"
	"strings"
)

// isExecutableMode always passes on Windows; executability is determined by
// the file extension, which executableNames already constrains.
func isExecutableMode(_ os.FileInfo) bool {
	return true
}

// executableNames returns the candidate file names for a bare command name.
// Names without an extension get the standard executable extensions appended.
func executableNames(name string) []string {
	lower := strings.ToLower(name)
	for _, ext := range []string{".exe", ".cmd", ".bat", ".com"} {
		if strings.HasSuffix(lower, ext) {
			return []string{name}
		}
	}
	return []string{name + ".exe", name + ".cmd", name + ".bat", name}
}
