// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package procutil provides cross-platform process state checks.
//
// It wraps github.com/shirou/gopsutil/v4/process, which uses native
// platform APIs (Windows OpenProcess, /proc on Linux, sysctl on macOS/BSD).
// This avoids the stale-PID false positives that os.FindProcess + Signal(0)
// produces on Windows.
//
// browse-core uses it to confirm that a detached browser child actually
// came up after spawning.
package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform (Windows and Unix). Invalid PIDs return false.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}
