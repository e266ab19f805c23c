//go:build linux

// Package x11 implements the platform backend for X11 sessions using the
// pure-Go XGB bindings. Input synthesis goes through the XTEST extension,
// window management through EWMH/ICCCM, display enumeration through RandR,
// and the clipboard through the X selection-ownership protocol.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/deskhand/deskhand/internal/platform"
)

// Backend is the X11 adapter. It owns the display connection and, once text
// has been placed on the clipboard, a hidden utility window holding selection
// ownership. Neither is exposed for external mutation.
type Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	keymap map[platform.Key]xproto.Keycode

	// Clipboard state, created lazily on first ClipboardSetText.
	clipWindow xproto.Window
	clipText   []byte
	atoms      clipAtoms
}

var _ platform.Backend = (*Backend)(nil)

// New connects to the X server and initializes the XTEST extension and the
// key-code map.
func New() (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	if err := xtest.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("xtest init failed: %w", err)
	}
	if err := randr.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	// Initialize the keysym tables used for key-code lookup.
	keybind.Initialize(xu)

	b := &Backend{
		xu:   xu,
		root: xu.RootWin(),
	}
	b.keymap = b.buildKeymap()
	return b, nil
}

// Name identifies the adapter.
func (b *Backend) Name() string { return "x11" }

// Close disconnects from the X server.
func (b *Backend) Close() {
	b.xu.Conn().Close()
}

// sync forces a round-trip so queued fake-input requests are processed.
func (b *Backend) sync() {
	b.xu.Sync()
}
