// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package wslutil

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/browsekit/browse-core/pathutil"
)

// WindowsConfig locates the Windows side of a WSL system.
type WindowsConfig struct {
	// Root is the Linux mount of the Windows system drive (e.g. /mnt/c).
	Root string
	// CmdPath is the location of cmd.exe.
	CmdPath string
	// PowerShellPath is the location of powershell.exe, empty if absent.
	PowerShellPath string
}

// DiscoverWindowsConfig finds the Windows root and shells by scanning PATH
// entries. This avoids guessing mount points and is the fastest way to
// locate the interop binaries.
func DiscoverWindowsConfig() (*WindowsConfig, error) {
	return discoverWindowsConfig(os.Getenv("PATH"))
}

func discoverWindowsConfig(pathEnv string) (*WindowsConfig, error) {
	var wc WindowsConfig
	for _, entry := range filepath.SplitList(pathEnv) {
		normalized := strings.TrimRight(strings.ToLower(entry), "/")
		if strings.HasSuffix(normalized, "/windows/system32") {
			root, err := filepath.EvalSymlinks(filepath.Join(entry, "..", ".."))
			if err != nil {
				return nil, fmt.Errorf("invalid windows config: %w", err)
			}
			wc.Root = root
			wc.CmdPath = filepath.Join(entry, "cmd.exe")
			break
		}
	}
	if wc.Root == "" {
		return nil, fmt.Errorf("invalid windows config: no windows/system32 in PATH")
	}

	for _, entry := range filepath.SplitList(pathEnv) {
		if strings.HasPrefix(entry, wc.Root) {
			ps := filepath.Join(entry, "powershell.exe")
			if info, err := os.Stat(ps); err == nil && info.Mode().IsRegular() {
				wc.PowerShellPath = ps
			}
		}
	}

	return &wc, nil
}

// DefaultBrowserCommand determines the Windows default browser for target
// and returns the translated command to invoke it from the Linux side.
// It prefers powershell.exe (registry association query) and falls back to
// `cmd.exe /c ftype http`.
func (wc *WindowsConfig) DefaultBrowserCommand(target *url.URL) (name string, args []string, err error) {
	var cmdline string
	if wc.PowerShellPath != "" {
		cmdline, err = wc.browserCommandFromPowerShell()
	} else {
		cmdline, err = wc.browserCommandFromCmd()
	}
	if err != nil {
		return "", nil, err
	}
	return wc.parseBrowserCommand(cmdline, target)
}

// browserCommandFromPowerShell asks the Win32 association API for the http
// handler command line.
func (wc *WindowsConfig) browserCommandFromPowerShell() (string, error) {
	cmd := exec.Command(wc.PowerShellPath,
		"-NoLogo", "-NoProfile", "-NonInteractive", "-Command", "-")
	cmd.Stdin = strings.NewReader(assocQueryScript)

	slog.Debug("querying windows default browser", "shell", wc.PowerShellPath)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("powershell.exe error: %w", err)
	}

	cmdline := strings.TrimSpace(string(out))
	if cmdline == "" {
		return "", fmt.Errorf("powershell.exe error: empty browser command")
	}
	return cmdline, nil
}

// browserCommandFromCmd reads the http file-type association via cmd.exe.
func (wc *WindowsConfig) browserCommandFromCmd() (string, error) {
	cmd := exec.Command(wc.CmdPath, "/Q", "/C", "ftype http")

	slog.Debug("querying windows default browser", "shell", wc.CmdPath)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("cmd.exe error: %w", err)
	}

	cmdline := strings.TrimSpace(string(out))
	if cmdline == "" {
		return "", fmt.Errorf("cmd.exe error: empty browser command")
	}
	return cmdline, nil
}

// parseBrowserCommand turns the registry command line into an invokable
// command: %0/%1 placeholders become the translated target, and the program
// path is translated to its Linux view.
func (wc *WindowsConfig) parseBrowserCommand(cmdline string, target *url.URL) (string, []string, error) {
	filePath, err := wc.FilePathFromURL(target)
	if err != nil {
		return "", nil, err
	}

	var tokens []string
	for _, token := range Tokenize(cmdline) {
		if token == "%0" || token == "%1" {
			tokens = append(tokens, filePath)
		} else {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return "", nil, fmt.Errorf("invalid browser command %q", cmdline)
	}

	program, err := wc.WinToLinux(tokens[0])
	if err != nil {
		return "", nil, err
	}
	return program, tokens[1:], nil
}

// FilePathFromURL renders target the way the Windows browser must see it:
// file URLs become Windows paths (network form when needed), everything
// else passes through as a URL string.
func (wc *WindowsConfig) FilePathFromURL(target *url.URL) (string, error) {
	if target.Scheme != "file" {
		return target.String(), nil
	}
	if target.Host != "" {
		return `\\wsl$` + strings.ReplaceAll(target.Path, "/", `\`), nil
	}
	return wc.LinuxToWin(target.Path)
}

// WinToLinux converts a Windows system-drive path to its Linux view under
// the WSL root mount.
func (wc *WindowsConfig) WinToLinux(path string) (string, error) {
	if len(path) > 3 {
		prefix := path[:3]
		if prefix == `C:\` || prefix == `c:\` {
			return filepath.Join(wc.Root, strings.ReplaceAll(path[3:], `\`, "/")), nil
		}
	}
	return "", fmt.Errorf("invalid windows path %q", path)
}

// LinuxToWin converts a Linux path to the Windows view: paths under the
// Windows root mount map onto C:\, everything else goes through the
// \\wsl$\<distro> network share.
func (wc *WindowsConfig) LinuxToWin(path string) (string, error) {
	if rel, err := filepath.Rel(wc.Root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return `C:\` + strings.ReplaceAll(rel, "/", `\`), nil
	}

	distro, err := wc.DistroName()
	if err != nil {
		return "", err
	}
	return `\\wsl$\` + distro + strings.ReplaceAll(path, "/", `\`), nil
}

// DistroName returns the WSL distribution name, normally from
// WSL_DISTRO_NAME. When that is unset (e.g. running as root) it is inferred
// from the Windows view of the filesystem root via powershell.exe.
func (wc *WindowsConfig) DistroName() (string, error) {
	if name := os.Getenv("WSL_DISTRO_NAME"); name != "" {
		return name, nil
	}

	if wc.PowerShellPath == "" {
		return "", fmt.Errorf("unable to determine wsl distro name")
	}

	cmd := exec.Command(wc.PowerShellPath,
		"-NoLogo", "-NoProfile", "-NonInteractive", "-Command",
		"$loc = Get-Location\nWrite-Output $loc.Path")
	cmd.Dir = "/"

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("unable to determine wsl distro name: %w", err)
	}

	return parseDistroName(string(out))
}

// parseDistroName extracts the distro name from a powershell location path
// of the shape ...FileSystem::\\wsl$\<distro>\...
func parseDistroName(out string) (string, error) {
	output := strings.TrimRight(strings.TrimSpace(out), `\`)
	idx := strings.Index(output, `::\\`)
	// idx+9 skips the `::\\wsl$\` prefix; truncated output must not panic.
	if idx < 0 || idx+9 > len(output) {
		return "", fmt.Errorf("unable to determine wsl distro name from %q", output)
	}
	name := strings.TrimSpace(output[idx+9:])
	if name == "" {
		return "", fmt.Errorf("unable to determine wsl distro name from %q", output)
	}
	return name, nil
}

// Tokenize splits a Windows registry command line into tokens, honoring
// double-quoted segments (quotes removed, inner whitespace preserved).
func Tokenize(cmdline string) []string {
	var (
		tokens   []string
		current  strings.Builder
		inQuotes bool
	)
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range cmdline {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// WSLOpenAvailable reports whether the wsl-open helper is installed.
func WSLOpenAvailable() bool {
	return pathutil.Exists("wsl-open")
}

// assocQueryScript asks Windows for the default http handler command line
// through the Shlwapi AssocQueryString API.
// Adapted from https://stackoverflow.com/a/60972216
const assocQueryScript = `
$Signature = @"
using System;
using System.Runtime.InteropServices;
using System.Text;
public static class Win32Api
{

    [DllImport("Shlwapi.dll", SetLastError = true, CharSet = CharSet.Auto)]
    static extern uint AssocQueryString(AssocF flags, AssocStr str, string pszAssoc, string pszExtra,[Out] System.Text.StringBuilder pszOut, ref uint pcchOut);

    public static string GetDefaultBrowser()
    {
        AssocF assocF = AssocF.IsProtocol;
        AssocStr association = AssocStr.Command;
        string assocString = "http";

        uint length = 1024; // we assume 1k is sufficient memory to hold the command
        var sb = new System.Text.StringBuilder((int) length);
        uint ret = ret = AssocQueryString(assocF, association, assocString, null, sb, ref length);

        return (ret != 0) ? null : sb.ToString();
    }

    [Flags]
    internal enum AssocF : uint
    {
        IsProtocol = 0x1000,
    }

    internal enum AssocStr
    {
        Command = 1,
        Executable,
    }
}
"@

Add-Type -TypeDefinition $Signature

Write-Output $([Win32Api]::GetDefaultBrowser())
`
