// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

// Options configures a single launch. Construct with NewOptions and the
// With* builder methods; an Options value configures exactly one call and
// has no lifecycle beyond it.
type Options struct {
	suppressOutput bool
	targetHint     string
	dryRun         bool
	wait           bool
}

// defaultTargetHint opens a new tab on platforms that honor hints.
const defaultTargetHint = "_blank"

// NewOptions returns launch options with the defaults: launcher output
// suppressed, "_blank" target hint, dry-run off.
func NewOptions() *Options {
	return &Options{
		suppressOutput: true,
		targetHint:     defaultTargetHint,
	}
}

// WithSuppressOutput controls whether the launcher's stdout/stderr are
// attached to the null device. Disable it to see launcher diagnostics.
func (o *Options) WithSuppressOutput(suppress bool) *Options {
	o.suppressOutput = suppress
	return o
}

// WithTargetHint sets the hint passed to browsers that support one, e.g.
// the window target on wasm. An empty hint resets to the default.
func (o *Options) WithTargetHint(hint string) *Options {
	if hint == "" {
		hint = defaultTargetHint
	}
	o.targetHint = hint
	return o
}

// WithDryRun makes the launch validate that a launcher is available and
// log what would run, without spawning anything.
func (o *Options) WithDryRun(dryRun bool) *Options {
	o.dryRun = dryRun
	return o
}

// WithWait runs GUI launchers in the foreground and waits for them to exit
// instead of detaching. Text-mode browsers always wait.
func (o *Options) WithWait(wait bool) *Options {
	o.wait = wait
	return o
}

// SuppressOutput reports whether launcher output is suppressed.
func (o *Options) SuppressOutput() bool { return o.suppressOutput }

// TargetHint returns the configured target hint.
func (o *Options) TargetHint() string { return o.targetHint }

// DryRun reports whether this is a dry run.
func (o *Options) DryRun() bool { return o.dryRun }

// Wait reports whether the launch waits for the launcher to exit.
func (o *Options) Wait() bool { return o.wait }
