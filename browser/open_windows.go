// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build windows

package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/browsekit/browse-core/cmdutil"
	"github.com/browsekit/browse-core/pathutil"
)

// openBrowserInternal implements the launch on Windows. Only the system
// default browser is supported: the shell association machinery handles
// everything, and per-browser install locations are not reliably
// discoverable.
func openBrowserInternal(ctx context.Context, b Browser, target *Target, opts *Options) error {
	if b != BrowserDefault {
		return fmt.Errorf("%w: only the default browser can be opened on windows", ErrNotSupported)
	}

	path, err := pathutil.Resolve("cmd")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBrowser, err)
	}

	err = cmdutil.Run(ctx, cmdutil.Request{
		Path:           path,
		Args:           startArgs(target.String()),
		Background:     !opts.Wait(),
		SuppressOutput: opts.SuppressOutput(),
		DryRun:         opts.DryRun(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return nil
}

// startArgs builds the cmd.exe argument vector. start treats its first
// quoted argument as the window title, so an empty argument goes in that
// slot; exec's argv escaping renders it as exactly "" on the child command
// line. ^ and & are cmd metacharacters even inside start arguments.
func startArgs(url string) []string {
	return []string{"/c", "start", "", escapeCmdURL(url)}
}

// escapeCmdURL escapes a URL for cmd.exe argument position.
func escapeCmdURL(url string) string {
	return strings.ReplaceAll(strings.ReplaceAll(url, "^", "^^"), "&", "^&")
}
