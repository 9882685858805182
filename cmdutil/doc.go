// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package cmdutil executes resolved launcher commands with a uniform
// blocking and output-suppression policy.
//
// Every platform strategy funnels its invocations through Run, which
// enforces the contract shared by all of them:
//
//   - GUI launchers run in the background: the child is spawned with its
//     stdio attached to the null device and the call returns without
//     waiting for it.
//   - Text-mode launchers (lynx, w3m, ...) occupy the terminal, so they run
//     in the foreground with inherited stdio and the call blocks until the
//     child exits. A non-zero exit or a terminating signal is surfaced as
//     an error.
//   - SuppressOutput detaches stdio even for foreground runs.
//   - DryRun validates that the launcher was resolved, logs the command
//     line, and never spawns anything.
//
// Foreground runs honor context cancellation; background children
// deliberately outlive the caller's context.
package cmdutil
