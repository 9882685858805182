// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package xdgutil

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func writeEntry(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create entry dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write entry: %v", err)
	}
	return path
}

const firefoxEntry = `# comment line to be ignored
[Desktop Entry]
Name=Firefox
Exec=/usr/bin/firefox %u
Terminal=false
[Desktop Action new-window]
Exec=/bin/ls
# the above Exec belongs to another section
`

func TestParseDesktopEntry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    DesktopEntry
		wantErr bool
	}{
		{
			name:    "typical browser entry",
			content: firefoxEntry,
			want:    DesktopEntry{Exec: "/usr/bin/firefox %u"},
		},
		{
			name: "hidden entry",
			content: "[Desktop Entry]\n" +
				"Exec=/usr/bin/firefox %u\n" +
				"Hidden=true\n",
			want: DesktopEntry{Exec: "/usr/bin/firefox %u", Hidden: true},
		},
		{
			name: "terminal entry",
			content: "[Desktop Entry]\n" +
				"Exec=lynx %u\n" +
				"Terminal=true\n",
			want: DesktopEntry{Exec: "lynx %u", Terminal: true},
		},
		{
			name:    "no exec key",
			content: "[Desktop Entry]\nName=Broken\n",
			wantErr: true,
		},
		{
			name:    "exec only in other section",
			content: "[Desktop Action foo]\nExec=/bin/ls\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEntry(t, t.TempDir(), "test.desktop", tt.content)

			got, err := ParseDesktopEntry(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseDesktopEntry() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDesktopEntry() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseDesktopEntry() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestCommandLine(t *testing.T) {
	const url = "https://example.com"

	tests := []struct {
		name     string
		exec     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "percent u substitution",
			exec:     "/usr/bin/firefox -new-tab %u",
			wantName: "/usr/bin/firefox",
			wantArgs: []string{"-new-tab", url},
		},
		{
			name:     "percent F substitution",
			exec:     "browser %F --flag",
			wantName: "browser",
			wantArgs: []string{url, "--flag"},
		},
		{
			name:     "no field code appends url",
			exec:     "browser --new-window",
			wantName: "browser",
			wantArgs: []string{"--new-window", url},
		},
		{
			name:    "empty exec",
			exec:    "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &DesktopEntry{Exec: tt.exec}
			name, args, err := entry.CommandLine(url)
			if tt.wantErr {
				if err == nil {
					t.Fatal("CommandLine() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CommandLine() error = %v", err)
			}
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("CommandLine() = %q %v, want %q %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestFindDesktopEntry(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_DATA_DIRS", t.TempDir())
	xdg.Reload()
	defer xdg.Reload()

	want := writeEntry(t, filepath.Join(dataHome, "applications"), "firefox.desktop", firefoxEntry)

	got, err := FindDesktopEntry("firefox.desktop")
	if err != nil {
		t.Fatalf("FindDesktopEntry() error = %v", err)
	}
	if got != want {
		t.Errorf("FindDesktopEntry() = %q, want %q", got, want)
	}
}

func TestFindDesktopEntryDashSubpath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_DATA_DIRS", t.TempDir())
	xdg.Reload()
	defer xdg.Reload()

	// org-example-browser.desktop stored as org/example/browser.desktop
	want := writeEntry(t,
		filepath.Join(dataHome, "applications"),
		filepath.Join("org", "example", "browser.desktop"),
		firefoxEntry)

	got, err := FindDesktopEntry("org-example-browser.desktop")
	if err != nil {
		t.Fatalf("FindDesktopEntry() error = %v", err)
	}
	if got != want {
		t.Errorf("FindDesktopEntry() = %q, want %q", got, want)
	}
}

func TestFindDesktopEntryMissing(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", t.TempDir())
	xdg.Reload()
	defer xdg.Reload()

	if _, err := FindDesktopEntry("nope.desktop"); err == nil {
		t.Error("FindDesktopEntry() error = nil, want error for missing entry")
	}
}

func TestSearchDirsUserFirst(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()
	defer xdg.Reload()

	dirs := SearchDirs()
	if len(dirs) == 0 {
		t.Fatal("SearchDirs() returned nothing")
	}
	if !strings.HasPrefix(dirs[0], dataHome) {
		t.Errorf("SearchDirs()[0] = %q, want XDG_DATA_HOME %q first", dirs[0], dataHome)
	}
}
