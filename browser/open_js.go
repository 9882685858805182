// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build js && wasm

package browser

import (
	"context"
	"fmt"
	"syscall/js"
)

// openBrowserInternal implements the launch inside a browser runtime via
// window.open. Only web URLs make sense here, and the browser choice is the
// host page's, not ours.
func openBrowserInternal(_ context.Context, b Browser, target *Target, opts *Options) error {
	if b != BrowserDefault {
		return fmt.Errorf("%w: named browsers cannot be selected from wasm", ErrNotSupported)
	}

	url, err := target.HTTPURL()
	if err != nil {
		return err
	}

	if opts.DryRun() {
		return nil
	}

	window := js.Global().Get("window")
	if !window.Truthy() {
		return fmt.Errorf("%w: no window object in this runtime", ErrNoBrowser)
	}

	// window.open returns null when a popup blocker intervened.
	handle := window.Call("open", url, opts.TargetHint())
	if !handle.Truthy() {
		return fmt.Errorf("%w: window.open returned null (popup blocked?)", ErrLaunchFailed)
	}
	return nil
}
