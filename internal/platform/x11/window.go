//go:build linux

package x11

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/deskhand/deskhand/internal/platform"
)

// EWMH state atoms consulted for window state snapshots.
const (
	stateMaxVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	stateMaxHorz    = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateFullscreen = "_NET_WM_STATE_FULLSCREEN"
	stateHidden     = "_NET_WM_STATE_HIDDEN"
	stateAbove      = "_NET_WM_STATE_ABOVE"
)

// iconicState is the ICCCM WM_CHANGE_STATE value requesting minimization.
const iconicState = 3

// opacityMax is the _NET_WM_WINDOW_OPACITY value for a fully opaque window.
const opacityMax = 0xffffffff

// ListWindows enumerates the window manager's client list. Windows the
// manager does not track (override-redirect popups, docks it hides) are not
// reported. Zero-size windows are filtered out.
func (b *Backend) ListWindows(visibleOnly bool) ([]platform.WindowInfo, error) {
	clients, err := ewmh.ClientListGet(b.xu)
	if err != nil {
		return nil, fmt.Errorf("client list unavailable: %w", err)
	}
	active, _ := ewmh.ActiveWindowGet(b.xu)

	var windows []platform.WindowInfo
	for _, win := range clients {
		info := b.windowInfo(win, active)
		if info.Rect.Width <= 0 || info.Rect.Height <= 0 {
			continue
		}
		if visibleOnly && !info.IsVisible {
			continue
		}
		windows = append(windows, info)
	}
	return windows, nil
}

// ActiveWindow returns the focused window, or nil when no window has focus.
func (b *Backend) ActiveWindow() (*platform.WindowInfo, error) {
	active, err := ewmh.ActiveWindowGet(b.xu)
	if err != nil || active == 0 {
		return nil, nil
	}
	info := b.windowInfo(active, active)
	if info.Rect.Width <= 0 || info.Rect.Height <= 0 {
		return nil, nil
	}
	return &info, nil
}

// WindowAt returns the topmost visible window whose rectangle contains the
// point. The client list is bottom-to-top in stacking order, so the scan
// walks it backwards.
func (b *Backend) WindowAt(x, y int) (*platform.WindowInfo, error) {
	windows, err := b.ListWindows(true)
	if err != nil {
		return nil, err
	}
	p := platform.Point{X: x, Y: y}
	for i := len(windows) - 1; i >= 0; i-- {
		if windows[i].Rect.Contains(p) {
			return &windows[i], nil
		}
	}
	return nil, nil
}

// FocusWindow raises and activates the window.
func (b *Backend) FocusWindow(handle platform.WindowHandle) error {
	win := xproto.Window(handle)
	if err := ewmh.ActiveWindowReq(b.xu, win); err != nil {
		return fmt.Errorf("focus window %d failed: %w", win, err)
	}
	b.sync()
	return nil
}

// MoveWindow repositions the window, preserving its current size.
func (b *Backend) MoveWindow(handle platform.WindowHandle, x, y int) error {
	win := xproto.Window(handle)
	rect, err := b.windowGeometry(win)
	if err != nil {
		return err
	}
	return b.moveResize(win, x, y, rect.Width, rect.Height)
}

// ResizeWindow changes the window's size, preserving its current position.
func (b *Backend) ResizeWindow(handle platform.WindowHandle, width, height int) error {
	win := xproto.Window(handle)
	rect, err := b.windowGeometry(win)
	if err != nil {
		return err
	}
	return b.moveResize(win, rect.X, rect.Y, width, height)
}

func (b *Backend) moveResize(win xproto.Window, x, y, w, h int) error {
	if err := ewmh.MoveresizeWindow(b.xu, win, x, y, w, h); err != nil {
		return fmt.Errorf("moveresize window %d failed: %w", win, err)
	}
	b.sync()
	return nil
}

// SetWindowState drives the window to the requested state through EWMH and
// ICCCM requests. Transitioning to normal clears maximized, fullscreen and
// hidden in one pass.
func (b *Backend) SetWindowState(handle platform.WindowHandle, state platform.WindowState) error {
	win := xproto.Window(handle)
	var err error
	switch state {
	case platform.WindowMaximized:
		err = ewmh.WmStateReqExtra(b.xu, win, ewmh.StateAdd, stateMaxVert, stateMaxHorz, 2)
	case platform.WindowFullscreen:
		err = ewmh.WmStateReq(b.xu, win, ewmh.StateAdd, stateFullscreen)
	case platform.WindowMinimized:
		err = ewmh.ClientEvent(b.xu, win, "WM_CHANGE_STATE", iconicState)
	case platform.WindowNormal:
		if err = ewmh.WmStateReqExtra(b.xu, win, ewmh.StateRemove, stateMaxVert, stateMaxHorz, 2); err != nil {
			break
		}
		if err = ewmh.WmStateReq(b.xu, win, ewmh.StateRemove, stateFullscreen); err != nil {
			break
		}
		// Deiconify by mapping the window again.
		err = xproto.MapWindowChecked(b.xu.Conn(), win).Check()
	default:
		return fmt.Errorf("unknown window state: %s", state)
	}
	if err != nil {
		return fmt.Errorf("set window %d state %s failed: %w", win, state, err)
	}
	b.sync()
	return nil
}

// GetWindowState returns the window's coarse state snapshot.
func (b *Backend) GetWindowState(handle platform.WindowHandle) (platform.WindowState, error) {
	win := xproto.Window(handle)
	atoms, err := ewmh.WmStateGet(b.xu, win)
	if err != nil {
		return platform.WindowNormal, fmt.Errorf("window %d state unavailable: %w", win, err)
	}
	state := stateFromAtoms(atoms)
	if state == platform.WindowNormal && !b.isViewable(win) {
		return platform.WindowMinimized, nil
	}
	return state, nil
}

// stateFromAtoms collapses the EWMH state atom list to one coarse state.
// Fullscreen wins over maximized; maximized requires both axes.
func stateFromAtoms(atoms []string) platform.WindowState {
	var maxVert, maxHorz bool
	for _, a := range atoms {
		switch a {
		case stateFullscreen:
			return platform.WindowFullscreen
		case stateHidden:
			return platform.WindowMinimized
		case stateMaxVert:
			maxVert = true
		case stateMaxHorz:
			maxHorz = true
		}
	}
	if maxVert && maxHorz {
		return platform.WindowMaximized
	}
	return platform.WindowNormal
}

// CloseWindow asks the window manager to close the window gracefully.
func (b *Backend) CloseWindow(handle platform.WindowHandle) error {
	win := xproto.Window(handle)
	if err := ewmh.CloseWindow(b.xu, win); err != nil {
		return fmt.Errorf("close window %d failed: %w", win, err)
	}
	b.sync()
	return nil
}

// SetWindowOpacity sets _NET_WM_WINDOW_OPACITY. Compositor-dependent; without
// a compositor the property is set but has no visible effect.
func (b *Backend) SetWindowOpacity(handle platform.WindowHandle, opacity float64) error {
	if opacity < 0 || opacity > 1 {
		return fmt.Errorf("opacity %v out of range [0, 1]", opacity)
	}
	win := xproto.Window(handle)
	value := uint(opacity * opacityMax)
	if err := xprop.ChangeProp32(b.xu, win, "_NET_WM_WINDOW_OPACITY", "CARDINAL", value); err != nil {
		return fmt.Errorf("set window %d opacity failed: %w", win, err)
	}
	b.sync()
	return nil
}

// SetWindowAlwaysOnTop toggles the EWMH above state.
func (b *Backend) SetWindowAlwaysOnTop(handle platform.WindowHandle, onTop bool) error {
	win := xproto.Window(handle)
	action := ewmh.StateRemove
	if onTop {
		action = ewmh.StateAdd
	}
	if err := ewmh.WmStateReq(b.xu, win, action, stateAbove); err != nil {
		return fmt.Errorf("set window %d always-on-top failed: %w", win, err)
	}
	b.sync()
	return nil
}

// windowInfo builds a snapshot of one window. Individual property failures
// degrade to zero values rather than failing the enumeration.
func (b *Backend) windowInfo(win xproto.Window, active xproto.Window) platform.WindowInfo {
	info := platform.WindowInfo{
		Handle:   platform.WindowHandle(win),
		IsActive: win == active,
		Opacity:  1.0,
	}

	if title, err := ewmh.WmNameGet(b.xu, win); err == nil && title != "" {
		info.Title = title
	} else if title, err := icccm.WmNameGet(b.xu, win); err == nil {
		info.Title = title
	}

	if class, err := icccm.WmClassGet(b.xu, win); err == nil {
		info.ClassName = class.Class
	}

	if pid, err := ewmh.WmPidGet(b.xu, win); err == nil {
		info.PID = int(pid)
		info.ProcessName = processName(int(pid))
	}

	if rect, err := b.windowGeometry(win); err == nil {
		info.Rect = rect
		info.ClientRect = rect
	}

	if atoms, err := ewmh.WmStateGet(b.xu, win); err == nil {
		info.State = stateFromAtoms(atoms)
		for _, a := range atoms {
			if a == stateAbove {
				info.IsAlwaysOnTop = true
			}
		}
	}

	info.IsVisible = b.isViewable(win)
	if info.State == platform.WindowNormal && !info.IsVisible {
		info.State = platform.WindowMinimized
	}

	if raw, err := b.propCardinal(win, "_NET_WM_WINDOW_OPACITY"); err == nil {
		info.Opacity = float64(raw) / float64(uint(opacityMax))
	}

	return info
}

// windowGeometry returns the window's rectangle in root coordinates.
func (b *Backend) windowGeometry(win xproto.Window) (platform.Rect, error) {
	conn := b.xu.Conn()
	geom, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("window %d geometry failed: %w", win, err)
	}
	trans, err := xproto.TranslateCoordinates(conn, win, b.root, 0, 0).Reply()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("window %d translate failed: %w", win, err)
	}
	return platform.Rect{
		X:      int(trans.DstX),
		Y:      int(trans.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

func (b *Backend) isViewable(win xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(b.xu.Conn(), win).Reply()
	return err == nil && attrs.MapState == xproto.MapStateViewable
}

// processName reads the executable name from /proc.
func processName(pid int) string {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
