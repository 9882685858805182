// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package xdgutil

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/browsekit/browse-core/cmdutil"
	"github.com/browsekit/browse-core/pathutil"
)

// applicationsDir is the subdirectory of each XDG data dir that holds
// desktop entries.
const applicationsDir = "applications"

// DesktopEntry is the subset of a desktop-entry file relevant to launching.
type DesktopEntry struct {
	// Exec is the command line with optional %u/%U/%f/%F field codes.
	Exec string
	// Hidden marks the entry as deleted; it must not be used.
	Hidden bool
	// Terminal means the program runs in a terminal and must be waited on.
	Terminal bool
}

// DefaultBrowser queries xdg-settings for the default web browser and
// returns its desktop-entry name (e.g. "firefox.desktop").
func DefaultBrowser(ctx context.Context) (string, error) {
	tool, err := pathutil.Resolve("xdg-settings")
	if err != nil {
		return "", fmt.Errorf("unable to determine xdg browser: %w", err)
	}

	out, err := cmdutil.Output(ctx, tool, "get", "default-web-browser")
	if err != nil {
		return "", fmt.Errorf("unable to determine xdg browser: %w", err)
	}

	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", fmt.Errorf("no default xdg browser configured")
	}

	slog.Debug("found xdg default browser", "entry", name)
	return name, nil
}

// FindDesktopEntry locates the desktop-entry file for name across the XDG
// data directories. Per the desktop-entry spec, a '-' in the entry name may
// stand for a
// subdirectory separator, so "org-example-browser.desktop" is also tried as
// "org/example/browser.desktop".
func FindDesktopEntry(name string) (string, error) {
	for _, dir := range SearchDirs() {
		path := filepath.Join(dir, applicationsDir, name)
		if fileExists(path) {
			return path, nil
		}
		if strings.Contains(name, "-") {
			path = filepath.Join(dir, applicationsDir, strings.ReplaceAll(name, "-", string(os.PathSeparator)))
			if fileExists(path) {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("no desktop entry found for %q", name)
}

// SearchDirs returns the XDG data directories to search, user dir first.
func SearchDirs() []string {
	dirs := make([]string, 0, len(xdg.DataDirs)+1)
	if xdg.DataHome != "" {
		dirs = append(dirs, xdg.DataHome)
	}
	dirs = append(dirs, xdg.DataDirs...)
	return dirs
}

// ParseDesktopEntry reads the [Desktop Entry] section of the file at path.
// Keys outside that section and comment lines are ignored.
func ParseDesktopEntry(path string) (*DesktopEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		entry          DesktopEntry
		inDesktopEntry bool
		haveExec       bool
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "[Desktop Entry]":
			inDesktopEntry = true
		case strings.HasPrefix(line, "["):
			inDesktopEntry = false
		case inDesktopEntry && !strings.HasPrefix(line, "#"):
			idx := strings.IndexByte(line, '=')
			if idx < 0 {
				continue
			}
			key, value := line[:idx], line[idx+1:]
			switch key {
			case "Exec":
				entry.Exec = value
				haveExec = true
			case "Hidden":
				entry.Hidden = value == "true"
			case "Terminal":
				entry.Terminal = value == "true"
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !haveExec {
		return nil, fmt.Errorf("%s: not a valid desktop entry (no Exec)", path)
	}
	return &entry, nil
}

// CommandLine expands the entry's Exec line for url. Field codes %u, %U,
// %f and %F are replaced by the URL; if none is present the URL is appended
// as the last argument.
func (e *DesktopEntry) CommandLine(url string) (name string, args []string, err error) {
	fields := strings.Fields(e.Exec)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("desktop entry has an empty Exec line")
	}

	urlAdded := false
	args = make([]string, 0, len(fields))
	for _, arg := range fields[1:] {
		switch arg {
		case "%u", "%U", "%f", "%F":
			urlAdded = true
			args = append(args, url)
		default:
			args = append(args, arg)
		}
	}
	if !urlAdded {
		args = append(args, url)
	}

	return fields[0], args, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
