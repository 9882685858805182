// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build (linux && !android) || freebsd || openbsd || netbsd || dragonfly || solaris || haiku

package browser

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/browsekit/browse-core/cmdutil"
	"github.com/browsekit/browse-core/env"
	"github.com/browsekit/browse-core/pathutil"
	"github.com/browsekit/browse-core/wslutil"
	"github.com/browsekit/browse-core/xdgutil"
)

// launcherCommands maps named browsers to their launcher candidates, tried
// in order.
var launcherCommands = map[Browser][]string{
	BrowserFirefox:     {"firefox"},
	BrowserChrome:      {"google-chrome", "google-chrome-stable", "chrome"},
	BrowserChromium:    {"chromium", "chromium-browser"},
	BrowserOpera:       {"opera"},
	BrowserEdge:        {"microsoft-edge", "microsoft-edge-stable"},
	BrowserWebPositive: {"WebPositive"},
	BrowserLynx:        {"lynx"},
	BrowserW3M:         {"w3m"},
	BrowserELinks:      {"elinks"},
}

// openBrowserInternal implements the launch on Linux and the BSDs.
func openBrowserInternal(ctx context.Context, b Browser, target *Target, opts *Options) error {
	if b == BrowserDefault {
		return openDefault(ctx, target, opts)
	}

	candidates, ok := launcherCommands[b]
	if !ok {
		return fmt.Errorf("%w: %s is not available on %s", ErrNotSupported, b.DisplayName(), runtime.GOOS)
	}

	url := target.String()
	var lastErr error
	for _, name := range candidates {
		if err := tryLauncher(ctx, opts, name, url); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return classify(lastErr)
}

// openDefault opens the system default browser via a fixed-priority chain:
//
//  1. the BROWSER environment variable
//  2. haiku's open (haiku only)
//  3. the xdg-settings default browser and its desktop entry
//  4. desktop environment specific openers, including WSL and Flatpak
//  5. x-www-browser
//
// First success wins; when everything fails the result is ErrNoBrowser.
func openDefault(ctx context.Context, target *Target, opts *Options) error {
	url := target.String()

	if err := tryBrowserEnv(ctx, url, opts); err == nil {
		return nil
	}

	if runtime.GOOS == "haiku" {
		if err := tryLauncher(ctx, opts, "open", url); err == nil {
			return nil
		}
	}

	if err := tryXDG(ctx, url, opts); err == nil {
		return nil
	}

	if err := tryDesktop(ctx, target, opts); err == nil {
		return nil
	}

	if err := tryLauncher(ctx, opts, "x-www-browser", url); err == nil {
		return nil
	}

	return fmt.Errorf("%w: you can specify one in the BROWSER environment variable", ErrNoBrowser)
}

// tryBrowserEnv runs the user-configured BROWSER candidates in order.
func tryBrowserEnv(ctx context.Context, url string, opts *Options) error {
	cmds := env.BrowserCommands(url)
	if len(cmds) == 0 {
		return fmt.Errorf("no browser configured in the BROWSER environment variable")
	}

	var lastErr error
	for _, cmd := range cmds {
		if err := tryLauncher(ctx, opts, cmd.Name, cmd.Args...); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return lastErr
}

// tryXDG resolves the xdg-settings default browser to its desktop entry
// and runs the entry's Exec command.
func tryXDG(ctx context.Context, url string, opts *Options) error {
	entryName, err := xdgutil.DefaultBrowser(ctx)
	if err != nil {
		return err
	}

	entryPath, err := xdgutil.FindDesktopEntry(entryName)
	if err != nil {
		return err
	}

	entry, err := xdgutil.ParseDesktopEntry(entryPath)
	if err != nil {
		return err
	}
	if entry.Hidden {
		return fmt.Errorf("desktop entry %s is hidden", entryPath)
	}

	name, args, err := entry.CommandLine(url)
	if err != nil {
		return err
	}

	path, err := pathutil.Resolve(name)
	if err != nil {
		return err
	}

	slog.Debug("launching xdg default browser", "entry", entryPath, "path", path)
	return cmdutil.Run(ctx, cmdutil.Request{
		Path:           path,
		Args:           args,
		Background:     !entry.Terminal && !isTextLauncher(path) && !opts.Wait(),
		SuppressOutput: opts.SuppressOutput(),
		DryRun:         opts.DryRun(),
	})
}

// tryDesktop runs the opener for the detected desktop environment.
func tryDesktop(ctx context.Context, target *Target, opts *Options) error {
	url := target.String()

	switch env.GuessDesktop() {
	case env.DesktopKDE:
		return firstOf(ctx, opts,
			launcher{"kde-open", []string{url}},
			launcher{"kde-open5", []string{url}},
			launcher{"kfmclient", []string{"newTab", url}},
		)
	case env.DesktopGNOME:
		return firstOf(ctx, opts,
			launcher{"gio", []string{"open", url}},
			launcher{"gvfs-open", []string{url}},
			launcher{"gnome-open", []string{url}},
		)
	case env.DesktopMATE:
		return firstOf(ctx, opts,
			launcher{"gio", []string{"open", url}},
			launcher{"gvfs-open", []string{url}},
			launcher{"mate-open", []string{url}},
		)
	case env.DesktopXFCE:
		return firstOf(ctx, opts,
			launcher{"exo-open", []string{url}},
			launcher{"gio", []string{"open", url}},
			launcher{"gvfs-open", []string{url}},
		)
	case env.DesktopWSL:
		return tryWSL(ctx, target, opts)
	case env.DesktopFlatpak:
		return tryFlatpak(ctx, target, opts)
	default:
		return fmt.Errorf("no desktop environment detected")
	}
}

// launcher pairs a candidate command with its arguments.
type launcher struct {
	name string
	args []string
}

// firstOf tries candidates in order and returns on the first success.
func firstOf(ctx context.Context, opts *Options, candidates ...launcher) error {
	var lastErr error
	for _, c := range candidates {
		if err := tryLauncher(ctx, opts, c.name, c.args...); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return lastErr
}

// tryWSL opens the target with the Windows side of a WSL system. Web URLs
// go through the Windows shells directly; file targets need the registry
// default browser and path translation.
func tryWSL(ctx context.Context, target *Target, opts *Options) error {
	switch target.Scheme() {
	case "http", "https":
		url := target.String()
		return firstOf(ctx, opts,
			// cmd.exe treats ^ and & specially even inside start arguments.
			launcher{"cmd.exe", []string{"/c", "start", escapeCmdURL(url)}},
			launcher{"powershell.exe", []string{"Start", escapePowerShellURL(url)}},
			launcher{"wsl-open", []string{url}},
		)
	case "file":
		wc, err := wslutil.DiscoverWindowsConfig()
		if err != nil {
			return err
		}
		name, args, err := wc.DefaultBrowserCommand(target.URL())
		if err != nil {
			return err
		}
		path, err := pathutil.Resolve(name)
		if err != nil {
			return err
		}
		return cmdutil.Run(ctx, cmdutil.Request{
			Path:           path,
			Args:           args,
			Background:     !opts.Wait(),
			SuppressOutput: opts.SuppressOutput(),
			DryRun:         opts.DryRun(),
		})
	default:
		return fmt.Errorf("%w: scheme %q is not supported under WSL", ErrInvalidTarget, target.Scheme())
	}
}

// tryFlatpak opens the target from inside a Flatpak sandbox. xdg-open is
// part of the standard Flatpak runtime, and only web URLs behave
// consistently through the portal.
func tryFlatpak(ctx context.Context, target *Target, opts *Options) error {
	url, err := target.HTTPURL()
	if err != nil {
		return err
	}
	return tryLauncher(ctx, opts, "xdg-open", url)
}

// escapeCmdURL escapes a URL for cmd.exe argument position.
func escapeCmdURL(url string) string {
	return strings.ReplaceAll(strings.ReplaceAll(url, "^", "^^"), "&", "^&")
}

// escapePowerShellURL quotes ampersands, which powershell would otherwise
// parse as command separators.
func escapePowerShellURL(url string) string {
	return strings.ReplaceAll(url, "&", `"&"`)
}
