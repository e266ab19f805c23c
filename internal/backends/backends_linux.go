//go:build linux

package backends

import (
	"github.com/deskhand/deskhand/internal/logger"
	"github.com/deskhand/deskhand/internal/platform"
	"github.com/deskhand/deskhand/internal/platform/wayland"
	"github.com/deskhand/deskhand/internal/platform/x11"
)

func init() {
	platform.NewBackendFunc = func() (platform.Backend, error) {
		if platform.WaylandSession() {
			b, err := wayland.New()
			if err == nil {
				return b, nil
			}
			// XWayland usually serves the X11 adapter fine, so a failed
			// uinput setup downgrades silently.
			logger.Debug("wayland backend unavailable, falling back to x11", "error", err)
		}
		return x11.New()
	}
}
