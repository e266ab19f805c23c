//go:build linux

// Package wayland implements a partial platform backend for Wayland
// sessions. Compositors do not let clients inject input or inspect foreign
// windows, so input synthesis goes through kernel uinput devices, displays
// through wlr-randr, and the clipboard through wl-copy/wl-paste. Window
// operations are declined.
package wayland

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ThomasT75/uinput"

	"github.com/deskhand/deskhand/internal/platform"
)

// Backend is the Wayland adapter. uinput emits relative events only, so the
// cursor position is tracked client-side and is authoritative only for
// motion this process generated.
type Backend struct {
	mouse    uinput.Mouse
	keyboard uinput.Keyboard

	pos         platform.Point
	buttonsDown map[platform.MouseButton]bool
	keysDown    map[platform.Key]bool
}

var _ platform.Backend = (*Backend)(nil)

// New creates the virtual input devices. Requires write access to
// /dev/uinput; failure here lets the caller fall back to X11 via XWayland.
func New() (*Backend, error) {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, fmt.Errorf("no wayland session detected")
	}

	mouse, err := uinput.CreateMouse("/dev/uinput", []byte("deskhand virtual mouse"))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual mouse: %w", err)
	}
	keyboard, err := uinput.CreateKeyboard("/dev/uinput", []byte("deskhand virtual keyboard"))
	if err != nil {
		mouse.Close()
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}

	b := &Backend{
		mouse:       mouse,
		keyboard:    keyboard,
		buttonsDown: make(map[platform.MouseButton]bool),
		keysDown:    make(map[platform.Key]bool),
	}
	// Seed the tracked position from the primary display center when the
	// compositor exposes one.
	if d, err := b.PrimaryDisplay(); err == nil {
		b.pos = platform.Point{
			X: d.Bounds.X + d.Bounds.Width/2,
			Y: d.Bounds.Y + d.Bounds.Height/2,
		}
	}
	return b, nil
}

// Name identifies the adapter.
func (b *Backend) Name() string { return "wayland" }

// Close releases the virtual input devices.
func (b *Backend) Close() {
	b.mouse.Close()
	b.keyboard.Close()
}

// CheckPermissions reports capability status. Device creation already proved
// uinput access; window introspection is structurally unavailable.
func (b *Backend) CheckPermissions() (map[string]bool, error) {
	_, wlrErr := exec.LookPath("wlr-randr")
	_, pasteErr := exec.LookPath("wl-paste")
	return map[string]bool{
		"input":     true,
		"display":   wlrErr == nil,
		"clipboard": pasteErr == nil,
		"windows":   false,
	}, nil
}
