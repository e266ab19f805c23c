//go:build linux

package wayland

import "github.com/deskhand/deskhand/internal/platform"

// Wayland's security model hides foreign toplevels from clients; no
// compositor-portable protocol exposes enumeration or mutation. Every window
// operation declines.

func windowsUnsupported(op string) error {
	return &platform.CapabilityError{Op: op, Platform: "wayland"}
}

func (b *Backend) ListWindows(visibleOnly bool) ([]platform.WindowInfo, error) {
	return nil, windowsUnsupported("window list")
}

func (b *Backend) ActiveWindow() (*platform.WindowInfo, error) {
	return nil, windowsUnsupported("active window")
}

func (b *Backend) WindowAt(x, y int) (*platform.WindowInfo, error) {
	return nil, windowsUnsupported("window hit test")
}

func (b *Backend) FocusWindow(handle platform.WindowHandle) error {
	return windowsUnsupported("window focus")
}

func (b *Backend) MoveWindow(handle platform.WindowHandle, x, y int) error {
	return windowsUnsupported("window move")
}

func (b *Backend) ResizeWindow(handle platform.WindowHandle, width, height int) error {
	return windowsUnsupported("window resize")
}

func (b *Backend) SetWindowState(handle platform.WindowHandle, state platform.WindowState) error {
	return windowsUnsupported("window state change")
}

func (b *Backend) GetWindowState(handle platform.WindowHandle) (platform.WindowState, error) {
	return platform.WindowNormal, windowsUnsupported("window state query")
}

func (b *Backend) CloseWindow(handle platform.WindowHandle) error {
	return windowsUnsupported("window close")
}

func (b *Backend) SetWindowOpacity(handle platform.WindowHandle, opacity float64) error {
	return windowsUnsupported("window opacity")
}

func (b *Backend) SetWindowAlwaysOnTop(handle platform.WindowHandle, onTop bool) error {
	return windowsUnsupported("window always-on-top")
}
