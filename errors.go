package displayq

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrEnvironmentUnavailable is returned when the OS cannot report
// display or cursor state: no active session, a missing display server,
// or a headless machine without a virtual framebuffer. It is the single
// caller-visible failure kind; queries never return partial or stale
// values instead.
var ErrEnvironmentUnavailable = errors.New("display environment unavailable")

// ErrUnsupportedPlatform is returned on operating systems displayq has
// no backend for.
var ErrUnsupportedPlatform = fmt.Errorf("displayq is not supported on %s/%s; supported: linux, darwin, windows", runtime.GOOS, runtime.GOARCH)
