// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package testutil has helpers shared by launcher tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFakeLauncher writes an executable shell script named name into dir.
// The script records its arguments, one per line, into the returned args
// file. Unix only.
func WriteFakeLauncher(t *testing.T, dir, name string) (script, argsFile string) {
	t.Helper()

	argsFile = filepath.Join(dir, name+".args")
	script = filepath.Join(dir, name)

	body := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"" + argsFile + "\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("writing fake launcher %s: %v", name, err)
	}
	return script, argsFile
}

// WriteFailingLauncher writes an executable shell script that always exits
// with status 1. Unix only.
func WriteFailingLauncher(t *testing.T, dir, name string) string {
	t.Helper()

	script := filepath.Join(dir, name)
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 1\n"), 0o755); err != nil {
		t.Fatalf("writing failing launcher %s: %v", name, err)
	}
	return script
}

// ReadArgs returns the arguments recorded by a fake launcher.
func ReadArgs(t *testing.T, argsFile string) []string {
	t.Helper()

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
