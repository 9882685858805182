// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"os"
	"runtime"
	"strings"
)

// Environment variable names consulted by this package.
const (
	// EnvBrowser holds user-configured launcher command templates.
	EnvBrowser = "BROWSER"

	// EnvContainer identifies container runtimes; Flatpak sets it to "flatpak".
	EnvContainer = "container"

	// EnvCurrentDesktop is the XDG desktop identification variable.
	EnvCurrentDesktop = "XDG_CURRENT_DESKTOP"

	// EnvDesktopSession is the legacy desktop session variable.
	EnvDesktopSession = "DESKTOP_SESSION"
)

// Desktop identifies the detected desktop environment or session type.
type Desktop string

const (
	DesktopGNOME   Desktop = "gnome"
	DesktopKDE     Desktop = "kde"
	DesktopMATE    Desktop = "mate"
	DesktopXFCE    Desktop = "xfce"
	DesktopWSL     Desktop = "wsl"
	DesktopFlatpak Desktop = "flatpak"
	DesktopUnknown Desktop = "unknown"
)

// Command is a launcher command line expanded from a BROWSER template.
type Command struct {
	// Name is the command to execute (bare name or explicit path).
	Name string
	// Args are the remaining arguments, URL already substituted.
	Args []string
}

// wslInteropFile is the procfs entry that reports whether WSL interop with
// Windows tools is enabled. Overridable in tests.
var wslInteropFile = "/proc/sys/fs/binfmt_misc/WSLInterop"

// BrowserCommands expands the BROWSER environment variable into launcher
// command lines for url, in configured order. Entries that expand to nothing
// are skipped. Returns nil when BROWSER is unset or empty.
func BrowserCommands(url string) []Command {
	return expandBrowserTemplates(os.Getenv(EnvBrowser), url)
}

// expandBrowserTemplates implements the BROWSER expansion rules on an
// explicit value, for testability.
func expandBrowserTemplates(value, url string) []Command {
	var cmds []Command
	for _, entry := range strings.Split(value, ":") {
		if entry == "" {
			continue
		}
		line := strings.ReplaceAll(entry, "%s", url)
		line = strings.ReplaceAll(line, "%c", ":")
		line = strings.ReplaceAll(line, "%%", "%")

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd := Command{Name: fields[0], Args: fields[1:]}
		if !strings.Contains(entry, "%s") {
			cmd.Args = append(cmd.Args, url)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// GuessDesktop detects the current desktop environment. Flatpak and WSL are
// reported as pseudo-desktops because they change how URLs must be opened.
func GuessDesktop() Desktop {
	xcd := strings.ToLower(os.Getenv(EnvCurrentDesktop))
	session := strings.ToLower(os.Getenv(EnvDesktopSession))

	switch {
	case IsFlatpak():
		return DesktopFlatpak
	case strings.Contains(xcd, "gnome") || strings.Contains(xcd, "cinnamon") ||
		strings.Contains(session, "gnome"):
		return DesktopGNOME
	case strings.Contains(xcd, "kde") ||
		os.Getenv("KDE_FULL_SESSION") != "" ||
		os.Getenv("KDE_SESSION_VERSION") != "":
		return DesktopKDE
	case strings.Contains(xcd, "mate") || strings.Contains(session, "mate"):
		// MATE is distinct from GNOME because of mate-open.
		return DesktopMATE
	case strings.Contains(xcd, "xfce") || strings.Contains(session, "xfce"):
		return DesktopXFCE
	case IsWSL():
		return DesktopWSL
	default:
		return DesktopUnknown
	}
}

// IsWSL reports whether we are inside WSL with Windows interop enabled.
// When interop is disabled, Windows commands cannot be invoked, so WSL
// handling must not be attempted.
func IsWSL() bool {
	// procfs exists only on linux; avoid a disk hit elsewhere.
	if runtime.GOOS != "linux" {
		return false
	}
	data, err := os.ReadFile(wslInteropFile)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "enabled")
}

// IsFlatpak reports whether we are running inside a Flatpak sandbox.
func IsFlatpak() bool {
	return strings.EqualFold(os.Getenv(EnvContainer), "flatpak")
}

// HasGraphicalSession reports whether a display is reachable. Windows and
// macOS sessions are assumed graphical; on Unix either X11 or Wayland must
// advertise a display.
func HasGraphicalSession() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}
