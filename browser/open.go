// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/browsekit/browse-core/cmdutil"
	"github.com/browsekit/browse-core/metrics"
	"github.com/browsekit/browse-core/pathutil"
	"github.com/browsekit/browse-core/registry"
)

// Open opens the target in the system default browser with default options.
// target may be a URL or a local file path.
func Open(target string) error {
	return OpenWith(context.Background(), BrowserDefault, target, nil)
}

// OpenBrowser opens the target in the requested browser with default
// options.
func OpenBrowser(b Browser, target string) error {
	return OpenWith(context.Background(), b, target, nil)
}

// OpenWith opens the target in the requested browser. A nil opts uses the
// defaults. The context cancels blocking (text-mode) launches; detached GUI
// children deliberately outlive it.
//
// GUI launches return once the child is spawned; text-mode launches block
// until the browser exits because it occupies the terminal.
func OpenWith(ctx context.Context, b Browser, rawTarget string, opts *Options) error {
	if b == "" {
		b = BrowserDefault
	}
	if opts == nil {
		opts = NewOptions()
	}

	target, err := ParseTarget(rawTarget)
	if err != nil {
		metrics.RecordOpen(runtime.GOOS, string(b), metrics.OutcomeFailure)
		return err
	}

	slog.Debug("opening target", "browser", string(b), "target", target.String(),
		"dryRun", opts.DryRun())

	err = dispatch(ctx, b, target, opts)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailure
	case opts.DryRun():
		outcome = metrics.OutcomeDryRun
	}
	metrics.RecordOpen(runtime.GOOS, string(b), outcome)

	return err
}

// dispatch routes the launch: registered launchers win over built-in named
// browsers, everything else goes to the platform strategy.
func dispatch(ctx context.Context, b Browser, target *Target, opts *Options) error {
	if b != BrowserDefault {
		if entry, ok := registry.Lookup(string(b)); ok {
			return launchRegistered(ctx, entry, target, opts)
		}
	}
	return openBrowserInternal(ctx, b, target, opts)
}

// launchRegistered runs a launcher registered via the registry package.
func launchRegistered(ctx context.Context, entry *registry.Entry, target *Target, opts *Options) error {
	name, args, err := entry.CommandLine(target.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBrowser, err)
	}

	path, err := pathutil.Resolve(name)
	if err != nil {
		return fmt.Errorf("%w: registered launcher %q: %v", ErrNoBrowser, entry.Name, err)
	}

	err = cmdutil.Run(ctx, cmdutil.Request{
		Path:           path,
		Args:           args,
		Background:     !entry.Console && !opts.Wait(),
		SuppressOutput: opts.SuppressOutput(),
		DryRun:         opts.DryRun(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return nil
}

// classify wraps a launch error with the matching sentinel: resolution
// failures become ErrNoBrowser, anything else ErrLaunchFailed.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pathutil.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNoBrowser, err)
	}
	return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
}

// tryLauncher resolves a launcher candidate and runs it under the standard
// policy. Text-mode launchers run in the foreground, everything else is
// detached. Used by the platform strategies for their fallback chains.
func tryLauncher(ctx context.Context, opts *Options, name string, args ...string) error {
	path, err := pathutil.Resolve(name)
	if err != nil {
		return err
	}
	return cmdutil.Run(ctx, cmdutil.Request{
		Path:           path,
		Args:           args,
		Background:     !isTextLauncher(path) && !opts.Wait(),
		SuppressOutput: opts.SuppressOutput(),
		DryRun:         opts.DryRun(),
	})
}
