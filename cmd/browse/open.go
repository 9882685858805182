// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/browsekit/browse-core/browser"
	"github.com/browsekit/browse-core/notify"
)

func runOpen(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("nothing to open: pass at least one URL or file path")
	}

	browserName, _ := cmd.Flags().GetString("browser")
	hint, _ := cmd.Flags().GetString("hint")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	suppress, _ := cmd.Flags().GetBool("suppress-output")
	wait, _ := cmd.Flags().GetBool("wait")
	notifyOutcome, _ := cmd.Flags().GetBool("notify")
	rateLimit, _ := cmd.Flags().GetInt("rate")

	b, err := browser.ParseBrowser(browserName)
	if err != nil {
		return err
	}

	opts := browser.NewOptions().
		WithSuppressOutput(suppress).
		WithTargetHint(hint).
		WithDryRun(dryRun).
		WithWait(wait)

	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), 1)
	}

	ctx := cmd.Context()
	var failures int
	for _, target := range args {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		}

		if err := browser.OpenWith(ctx, b, target, opts); err != nil {
			failures++
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", target, err)
			continue
		}
		if dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "would open %s with %s\n", target, b.DisplayName())
		}
	}

	if notifyOutcome {
		sendOutcomeNotification(ctx, len(args), failures)
	}

	if failures > 0 {
		return fmt.Errorf("failed to open %d of %d targets", failures, len(args))
	}
	return nil
}

// sendOutcomeNotification reports the batch outcome via the OS notification
// system. Notification failures are not launch failures.
func sendOutcomeNotification(ctx context.Context, total, failures int) {
	notifier, err := notify.New(notify.DefaultConfig())
	if err != nil {
		return
	}
	defer func() { _ = notifier.Close() }()

	n := notify.Notification{
		Title:     "browse",
		Severity:  "info",
		Timestamp: time.Now(),
		Message:   fmt.Sprintf("opened %d target(s)", total),
	}
	if failures > 0 {
		n.Severity = "warning"
		n.Message = fmt.Sprintf("failed to open %d of %d target(s)", failures, total)
	}
	_ = notifier.Send(ctx, n)
}
