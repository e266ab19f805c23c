package platform

import "time"

// Backend is the capability contract every platform adapter implements.
// Operations a platform structurally cannot perform return *CapabilityError
// instead of being omitted.
//
// All operations are synchronous and may block the calling goroutine for a
// bounded, platform-dependent duration (event round-trips, sleep-based
// interpolation, the clipboard negotiation timeout). The backend is intended
// to be used from a single goroutine; concurrent calls must be serialized by
// the caller. Internal locking is deliberately absent so that platform-level
// threading requirements of the native display libraries stay visible.
type Backend interface {
	// Name identifies the adapter ("macos", "x11", "wayland").
	Name() string

	// Mouse.

	// MousePosition returns the current cursor position in virtual-screen
	// coordinates.
	MousePosition() (Point, error)
	// MouseMoveTo moves the cursor to an absolute position. A positive
	// duration interpolates a linear path at a fixed sample rate, sleeping
	// between samples; zero moves instantly.
	MouseMoveTo(x, y int, duration time.Duration) error
	// MouseMoveRel moves the cursor relative to its current position.
	MouseMoveRel(dx, dy int, duration time.Duration) error
	// MousePress posts a button-down event at the current cursor position,
	// re-read at event-construction time.
	MousePress(button MouseButton) error
	// MouseRelease posts a button-up event at the current cursor position.
	MouseRelease(button MouseButton) error
	// MouseScroll scrolls by dx horizontal and dy vertical units.
	MouseScroll(dx, dy int) error
	// MouseIsPressed reports whether the button is currently held down.
	MouseIsPressed(button MouseButton) (bool, error)

	// Keyboard.

	// KeyPress posts a key-down event. Returns *UnknownKeyError when the key
	// has no native mapping.
	KeyPress(key Key) error
	// KeyRelease posts a key-up event.
	KeyRelease(key Key) error
	// KeyIsPressed reports whether the key is physically held down.
	// Best-effort: platforms that cannot query key state report false.
	KeyIsPressed(key Key) (bool, error)
	// TypeUnicode synthesizes each character of text. Mapped characters use
	// native key-code press/release; unmapped characters fall back to direct
	// Unicode event injection where the platform supports it, otherwise the
	// whole operation fails with *NotImplementedError. Typing the empty
	// string is a no-op.
	TypeUnicode(text string) error
	// KeyboardLayout returns a platform-specific layout identifier.
	KeyboardLayout() (string, error)

	// Displays.

	// Displays enumerates all displays. Exactly one entry has IsPrimary set.
	Displays() ([]DisplayInfo, error)
	// PrimaryDisplay returns the primary display, or ErrNoDisplays when
	// enumeration is empty.
	PrimaryDisplay() (DisplayInfo, error)
	// VirtualScreenRect returns the bounding box of all display bounds.
	VirtualScreenRect() (Rect, error)

	// Windows.

	// ListWindows enumerates top-level windows, optionally restricted to
	// visible ones. Zero-size windows are filtered out.
	ListWindows(visibleOnly bool) ([]WindowInfo, error)
	// ActiveWindow returns the focused window, or (nil, nil) when there is
	// none. A nil result is a valid outcome, not a failure.
	ActiveWindow() (*WindowInfo, error)
	// WindowAt returns the window containing the point, or (nil, nil).
	WindowAt(x, y int) (*WindowInfo, error)
	FocusWindow(handle WindowHandle) error
	MoveWindow(handle WindowHandle, x, y int) error
	ResizeWindow(handle WindowHandle, width, height int) error
	SetWindowState(handle WindowHandle, state WindowState) error
	GetWindowState(handle WindowHandle) (WindowState, error)
	CloseWindow(handle WindowHandle) error
	SetWindowOpacity(handle WindowHandle, opacity float64) error
	SetWindowAlwaysOnTop(handle WindowHandle, onTop bool) error

	// Clipboard.

	ClipboardGetText() (string, error)
	ClipboardSetText(text string) error
	// ClipboardClear is defined as ClipboardSetText("").
	ClipboardClear() error
	ClipboardHasText() (bool, error)

	// Permissions.

	// CheckPermissions reports capability-name → granted (e.g.
	// "accessibility", "screen_recording"). Status query only; no prompts.
	CheckPermissions() (map[string]bool, error)
}
