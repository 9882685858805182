// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build darwin

package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/browsekit/browse-core/cmdutil"
	"github.com/browsekit/browse-core/pathutil"
)

// appNames maps named GUI browsers to their macOS application bundle names,
// as passed to open -a.
var appNames = map[Browser]string{
	BrowserFirefox:  "Firefox",
	BrowserChrome:   "Google Chrome",
	BrowserChromium: "Chromium",
	BrowserSafari:   "Safari",
	BrowserOpera:    "Opera",
	BrowserEdge:     "Microsoft Edge",
}

// textCommands maps text-mode browsers to their command names.
var textCommands = map[Browser]string{
	BrowserLynx:   "lynx",
	BrowserW3M:    "w3m",
	BrowserELinks: "elinks",
}

// openBrowserInternal implements the launch on macOS. GUI browsers go
// through open(1), which talks to Launch Services; text-mode browsers run
// directly in the terminal.
func openBrowserInternal(ctx context.Context, b Browser, target *Target, opts *Options) error {
	url := target.String()

	if b == BrowserDefault {
		return runOpen(ctx, opts, url)
	}

	if name, ok := textCommands[b]; ok {
		return classify(tryLauncher(ctx, opts, name, url))
	}

	app, ok := appNames[b]
	if !ok {
		return fmt.Errorf("%w: %s is not available on macos", ErrNotSupported, b.DisplayName())
	}

	// open -a succeeds for any installed app, so a dry run checks the
	// bundle directly.
	if opts.DryRun() {
		bundle := filepath.Join("/Applications", app+".app")
		if fi, err := os.Stat(bundle); err != nil || !fi.IsDir() {
			return fmt.Errorf("%w: %s is not installed", ErrNoBrowser, app)
		}
	}
	return runOpen(ctx, opts, "-a", app, url)
}

// runOpen invokes open(1) with the given arguments.
func runOpen(ctx context.Context, opts *Options, args ...string) error {
	path, err := pathutil.Resolve("open")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBrowser, err)
	}
	err = cmdutil.Run(ctx, cmdutil.Request{
		Path:           path,
		Args:           args,
		Background:     !opts.Wait(),
		SuppressOutput: opts.SuppressOutput(),
		DryRun:         opts.DryRun(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return nil
}
