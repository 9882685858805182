// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeFakeLauncher creates an executable file in dir and returns its path.
func writeFakeLauncher(t *testing.T, dir, name string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake launcher: %v", err)
	}
	return path
}

func TestResolveFromPath(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeLauncher(t, dir, "fake-browser")
	t.Setenv("PATH", dir)

	got, err := Resolve("fake-browser")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolvePathOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeFakeLauncher(t, first, "fake-browser")
	writeFakeLauncher(t, second, "fake-browser")
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	got, err := Resolve("fake-browser")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %q, want first PATH entry %q", got, want)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFakeLauncher(t, dir, "fake-browser")

	// Explicit paths bypass PATH entirely.
	t.Setenv("PATH", "")

	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", path, err)
	}
	if got != path {
		t.Errorf("Resolve(%q) = %q, want same path back", path, got)
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	tests := []struct {
		name string
		arg  string
	}{
		{"missing command", "definitely-not-a-browser"},
		{"empty name", ""},
		{"missing explicit path", filepath.Join(t.TempDir(), "nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.arg)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrNotFound", tt.arg, err)
			}
		})
	}
}

func TestResolveNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-browser")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	t.Setenv("PATH", dir)

	if _, err := Resolve("fake-browser"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound for non-executable file", err)
	}
}

func TestResolveDirectoryIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "fake-browser"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	t.Setenv("PATH", dir)

	if _, err := Resolve("fake-browser"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound for directory", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	writeFakeLauncher(t, dir, "fake-browser")
	t.Setenv("PATH", dir)

	if !Exists("fake-browser") {
		t.Error("Exists(fake-browser) = false, want true")
	}
	if Exists("missing-browser") {
		t.Error("Exists(missing-browser) = true, want false")
	}
}
