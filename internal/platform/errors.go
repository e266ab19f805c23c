package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned when the host platform has no adapter at all.
// It fails at backend-selection time, not on first operation use.
var ErrUnsupported = fmt.Errorf("deskhand is not supported on %s/%s; supported: darwin, linux (X11/Wayland)", runtime.GOOS, runtime.GOARCH)

// ErrNoDisplays is returned when enumeration came back empty where a
// non-empty result was required (PrimaryDisplay, as opposed to Displays
// which may legitimately return an empty list).
var ErrNoDisplays = errors.New("no displays found")

// ErrNoWindowFound is returned when an operation targets a window handle
// that no longer resolves to a window.
var ErrNoWindowFound = errors.New("no window found")

// UnknownKeyError reports a logical key with no native mapping on this
// platform. Never retried.
type UnknownKeyError struct {
	Key Key
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key: %q", string(e.Key))
}

// UnsupportedButtonError reports a mouse button with no native mapping on
// this platform (e.g. X1/X2 on macOS).
type UnsupportedButtonError struct {
	Button MouseButton
}

func (e *UnsupportedButtonError) Error() string {
	return fmt.Sprintf("unsupported button: %s", e.Button)
}

// CapabilityError reports an operation the current platform structurally
// cannot perform. The adapter declines rather than omitting the method.
type CapabilityError struct {
	Op       string
	Platform string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("operation %s is not supported on %s", e.Op, e.Platform)
}

// NotImplementedError reports a feature that is recognized but not built for
// this platform (e.g. non-ASCII text injection on X11).
type NotImplementedError struct {
	Feature  string
	Platform string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented on %s", e.Feature, e.Platform)
}
