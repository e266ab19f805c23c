package platform

import (
	"os"
	"sync"
)

// NewBackendFunc is installed by the backends registration package via
// init(). It constructs the adapter for the current host, performing any
// session-type selection (X11 vs Wayland) internally.
var NewBackendFunc func() (Backend, error)

var (
	backendOnce sync.Once
	backend     Backend
	backendErr  error
)

// GetBackend returns the process-wide backend singleton, constructing it on
// first call. The first result wins for the life of the process; there is no
// teardown or reset. Callers needing a fresh backend in tests should use
// NewBackendFunc directly.
func GetBackend() (Backend, error) {
	backendOnce.Do(func() {
		backend, backendErr = newBackend()
	})
	return backend, backendErr
}

func newBackend() (Backend, error) {
	if NewBackendFunc == nil {
		return nil, ErrUnsupported
	}
	return NewBackendFunc()
}

// WaylandSession reports whether the current Linux session looks like
// Wayland: either a Wayland display socket variable is set or the session
// type variable says so.
func WaylandSession() bool {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return os.Getenv("XDG_SESSION_TYPE") == "wayland"
}
