// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import "errors"

// Classified launch failures. Wrapped errors carry detail; match with
// errors.Is.
var (
	// ErrNoBrowser means no usable browser launcher was found.
	ErrNoBrowser = errors.New("no usable browser launcher found")

	// ErrLaunchFailed means a launcher was found but its invocation failed
	// (non-zero exit or OS-level error).
	ErrLaunchFailed = errors.New("browser launcher invocation failed")

	// ErrNotSupported means the platform or the requested browser is not
	// supported.
	ErrNotSupported = errors.New("not supported")

	// ErrInvalidTarget means the URL or file path could not be used.
	ErrInvalidTarget = errors.New("invalid target")
)
