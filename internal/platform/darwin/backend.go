//go:build darwin && cgo

// Package darwin implements the platform backend for macOS on top of the
// Quartz event and window services. Input synthesis posts CGEvents to the
// HID event tap, displays come from CoreGraphics, window snapshots from the
// window server list, and the clipboard from pbcopy/pbpaste.
package darwin

import "github.com/deskhand/deskhand/internal/platform"

// Backend is the macOS adapter. It holds no native resources; every call
// goes straight to the Quartz services.
type Backend struct{}

var _ platform.Backend = (*Backend)(nil)

// New returns the macOS adapter.
func New() (*Backend, error) {
	return &Backend{}, nil
}

// Name identifies the adapter.
func (b *Backend) Name() string { return "macos" }
