// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

//go:build !windows && !darwin && !js && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris && !haiku && (!linux || android)

package browser

import (
	"context"
	"fmt"
	"runtime"
)

func openBrowserInternal(_ context.Context, _ Browser, _ *Target, _ *Options) error {
	return fmt.Errorf("%w: opening a browser is not supported on %s/%s", ErrNotSupported, runtime.GOOS, runtime.GOARCH)
}
