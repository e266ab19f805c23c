//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework AppKit -framework CoreFoundation -framework Foundation
#include <CoreGraphics/CoreGraphics.h>
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    uint32_t number;
    int pid;
    int layer;
    int onscreen;
    double x, y, width, height;
    double alpha;
    char title[256];
    char owner[256];
} window_info;

static void copy_cfstring(CFStringRef s, char *buf, int len) {
    buf[0] = 0;
    if (s) CFStringGetCString(s, buf, len, kCFStringEncodingUTF8);
}

// Fill infos with up to max windows from the window server, front to back.
// onscreenOnly skips minimized and hidden windows.
static int cg_list_windows(window_info *infos, int max, int onscreenOnly) {
    CGWindowListOption opts = kCGWindowListExcludeDesktopElements;
    if (onscreenOnly) opts |= kCGWindowListOptionOnScreenOnly;

    CFArrayRef list = CGWindowListCopyWindowInfo(opts, kCGNullWindowID);
    if (!list) return -1;

    int n = 0;
    CFIndex count = CFArrayGetCount(list);
    for (CFIndex i = 0; i < count && n < max; i++) {
        CFDictionaryRef win = CFArrayGetValueAtIndex(list, i);
        window_info *w = &infos[n];
        memset(w, 0, sizeof(*w));
        w->alpha = 1.0;

        CFNumberRef num;
        if ((num = CFDictionaryGetValue(win, kCGWindowNumber)))
            CFNumberGetValue(num, kCFNumberSInt32Type, &w->number);
        if ((num = CFDictionaryGetValue(win, kCGWindowOwnerPID)))
            CFNumberGetValue(num, kCFNumberIntType, &w->pid);
        if ((num = CFDictionaryGetValue(win, kCGWindowLayer)))
            CFNumberGetValue(num, kCFNumberIntType, &w->layer);
        if ((num = CFDictionaryGetValue(win, kCGWindowAlpha)))
            CFNumberGetValue(num, kCFNumberDoubleType, &w->alpha);

        CFBooleanRef onscreen = CFDictionaryGetValue(win, kCGWindowIsOnscreen);
        w->onscreen = onscreen ? CFBooleanGetValue(onscreen) : onscreenOnly;

        CFDictionaryRef boundsDict = CFDictionaryGetValue(win, kCGWindowBounds);
        if (boundsDict) {
            CGRect bounds;
            CGRectMakeWithDictionaryRepresentation(boundsDict, &bounds);
            w->x = bounds.origin.x;
            w->y = bounds.origin.y;
            w->width = bounds.size.width;
            w->height = bounds.size.height;
        }

        copy_cfstring(CFDictionaryGetValue(win, kCGWindowName), w->title, sizeof(w->title));
        copy_cfstring(CFDictionaryGetValue(win, kCGWindowOwnerName), w->owner, sizeof(w->owner));
        n++;
    }
    CFRelease(list);
    return n;
}

static int ns_frontmost_pid() {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    return app ? (int)app.processIdentifier : 0;
}

static int ns_activate_pid(int pid) {
    NSRunningApplication *app = [NSRunningApplication
        runningApplicationWithProcessIdentifier:(pid_t)pid];
    if (!app) return -1;
    [app activateWithOptions:NSApplicationActivateIgnoringOtherApps];
    return 0;
}
*/
import "C"

import (
	"fmt"

	"github.com/deskhand/deskhand/internal/platform"
)

const maxWindows = 256

// ListWindows snapshots the window server list. Ordering is front to back.
// Windows on non-zero layers (menu bar, dock, overlays) and zero-size
// windows are filtered out.
func (b *Backend) ListWindows(visibleOnly bool) ([]platform.WindowInfo, error) {
	onscreen := C.int(0)
	if visibleOnly {
		onscreen = 1
	}
	infos := make([]C.window_info, maxWindows)
	n := int(C.cg_list_windows(&infos[0], maxWindows, onscreen))
	if n < 0 {
		return nil, fmt.Errorf("window list unavailable")
	}

	frontPID := int(C.ns_frontmost_pid())
	seenActive := false

	var windows []platform.WindowInfo
	for _, w := range infos[:n] {
		if int(w.layer) != 0 {
			continue
		}
		rect := platform.Rect{
			X:      int(w.x),
			Y:      int(w.y),
			Width:  int(w.width),
			Height: int(w.height),
		}
		if rect.Width <= 0 || rect.Height <= 0 {
			continue
		}
		info := platform.WindowInfo{
			Handle:      platform.WindowHandle(w.number),
			Title:       C.GoString(&w.title[0]),
			ClassName:   C.GoString(&w.owner[0]),
			PID:         int(w.pid),
			ProcessName: C.GoString(&w.owner[0]),
			Rect:        rect,
			ClientRect:  rect,
			IsVisible:   w.onscreen != 0,
			Opacity:     float64(w.alpha),
		}
		if info.Opacity > 1 {
			info.Opacity = 1
		}
		if w.onscreen == 0 {
			info.State = platform.WindowMinimized
		}
		// The frontmost window of the frontmost app is the active one.
		if !seenActive && info.PID == frontPID && info.IsVisible {
			info.IsActive = true
			seenActive = true
		}
		windows = append(windows, info)
	}
	return windows, nil
}

// ActiveWindow returns the frontmost window of the frontmost application, or
// nil when nothing has focus.
func (b *Backend) ActiveWindow() (*platform.WindowInfo, error) {
	windows, err := b.ListWindows(true)
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if windows[i].IsActive {
			return &windows[i], nil
		}
	}
	return nil, nil
}

// WindowAt returns the frontmost visible window containing the point, or nil.
func (b *Backend) WindowAt(x, y int) (*platform.WindowInfo, error) {
	windows, err := b.ListWindows(true)
	if err != nil {
		return nil, err
	}
	p := platform.Point{X: x, Y: y}
	// Front-to-back ordering, so the first hit wins.
	for i := range windows {
		if windows[i].Rect.Contains(p) {
			return &windows[i], nil
		}
	}
	return nil, nil
}

// FocusWindow activates the owning application. Raising an individual window
// within an app needs the Accessibility API and an authorized process.
func (b *Backend) FocusWindow(handle platform.WindowHandle) error {
	info, err := b.findWindow(handle)
	if err != nil {
		return err
	}
	if C.ns_activate_pid(C.int(info.PID)) != 0 {
		return fmt.Errorf("failed to activate app with pid %d", info.PID)
	}
	return nil
}

// GetWindowState reports minimized for windows absent from the onscreen
// list; fullscreen detection compares the window to its display.
func (b *Backend) GetWindowState(handle platform.WindowHandle) (platform.WindowState, error) {
	info, err := b.findWindow(handle)
	if err != nil {
		return platform.WindowNormal, err
	}
	if !info.IsVisible {
		return platform.WindowMinimized, nil
	}
	displays, err := b.Displays()
	if err == nil {
		for _, d := range displays {
			if info.Rect == d.Bounds {
				return platform.WindowFullscreen, nil
			}
		}
	}
	return platform.WindowNormal, nil
}

// The window server offers no sanctioned mutation path without per-app
// Accessibility wiring, so these decline.

func (b *Backend) MoveWindow(handle platform.WindowHandle, x, y int) error {
	return &platform.CapabilityError{Op: "window move", Platform: "macos"}
}

func (b *Backend) ResizeWindow(handle platform.WindowHandle, width, height int) error {
	return &platform.CapabilityError{Op: "window resize", Platform: "macos"}
}

func (b *Backend) SetWindowState(handle platform.WindowHandle, state platform.WindowState) error {
	return &platform.CapabilityError{Op: "window state change", Platform: "macos"}
}

func (b *Backend) CloseWindow(handle platform.WindowHandle) error {
	return &platform.CapabilityError{Op: "window close", Platform: "macos"}
}

func (b *Backend) SetWindowOpacity(handle platform.WindowHandle, opacity float64) error {
	return &platform.CapabilityError{Op: "window opacity", Platform: "macos"}
}

func (b *Backend) SetWindowAlwaysOnTop(handle platform.WindowHandle, onTop bool) error {
	return &platform.CapabilityError{Op: "window always-on-top", Platform: "macos"}
}

func (b *Backend) findWindow(handle platform.WindowHandle) (*platform.WindowInfo, error) {
	windows, err := b.ListWindows(false)
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if windows[i].Handle == handle {
			return &windows[i], nil
		}
	}
	return nil, platform.ErrNoWindowFound
}
