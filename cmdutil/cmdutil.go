// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package cmdutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/browsekit/browse-core/metrics"
	"github.com/browsekit/browse-core/procutil"
)

// Request describes one launcher invocation.
type Request struct {
	// Path is the resolved launcher executable.
	Path string
	// Args are the launcher arguments, URL included.
	Args []string
	// Background spawns the child detached and returns immediately.
	// Foreground runs wait for the child and report its exit status.
	Background bool
	// SuppressOutput attaches the child's stdio to the null device even
	// for foreground runs.
	SuppressOutput bool
	// DryRun logs the command line without spawning anything.
	DryRun bool
}

// Run executes a launcher according to the request policy.
func Run(ctx context.Context, req Request) error {
	launcher := filepath.Base(req.Path)

	if req.DryRun {
		slog.Debug("dry-run: not invoking launcher",
			"launcher", launcher, "path", req.Path, "args", req.Args)
		metrics.RecordLaunch(launcher, metrics.OutcomeDryRun, 0)
		return nil
	}

	start := time.Now()
	var err error
	if req.Background {
		err = startDetached(req)
	} else {
		err = runForeground(ctx, req)
	}

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
		metrics.RecordLaunchError(launcher, err)
	}
	metrics.RecordLaunch(launcher, outcome, time.Since(start))

	return err
}

// startDetached spawns the launcher without waiting for it. The child's
// stdio is attached to the null device; a GUI browser has no business
// writing to our terminal.
func startDetached(req Request) error {
	cmd := exec.Command(req.Path, req.Args...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", req.Path, err)
	}

	pid := cmd.Process.Pid
	slog.Debug("launcher spawned", "path", req.Path, "args", req.Args, "pid", pid)

	// Reap the child when it exits so it doesn't linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()

	// Launchers like xdg-open hand off and exit almost immediately, so a
	// dead PID here is not a failure. Worth a debug line when it is alive.
	if procutil.IsProcessRunning(pid) {
		slog.Debug("launcher still running after spawn", "pid", pid)
	}

	return nil
}

// runForeground waits for the launcher to exit and classifies its status.
func runForeground(ctx context.Context, req Request) error {
	cmd := exec.CommandContext(ctx, req.Path, req.Args...)

	if !req.SuppressOutput && HasTerminal() {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	slog.Debug("running launcher", "path", req.Path, "args", req.Args,
		"suppressOutput", req.SuppressOutput)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		if code := exitErr.ExitCode(); code >= 0 {
			return fmt.Errorf("%s: return code %d", req.Path, code)
		}
		return fmt.Errorf("%s: interrupted by signal", req.Path)
	}

	return fmt.Errorf("failed to run %s: %w", req.Path, err)
}

// Output runs a command to completion and returns its standard output.
// stdin is the null device and stderr is discarded; this is for short
// queries like `xdg-settings get default-web-browser`.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}

// HasTerminal reports whether the process is attached to an interactive
// terminal. Foreground text-mode browsers need one; without it their
// stdio stays on the null device.
func HasTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
