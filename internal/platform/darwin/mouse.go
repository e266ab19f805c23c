//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <CoreGraphics/CoreGraphics.h>

static void cg_mouse_position(double *x, double *y) {
    CGEventRef event = CGEventCreate(NULL);
    CGPoint point = CGEventGetLocation(event);
    CFRelease(event);
    *x = point.x;
    *y = point.y;
}

static int cg_mouse_move(double x, double y) {
    CGPoint point = CGPointMake(x, y);
    CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved, point, kCGMouseButtonLeft);
    if (!move) return -1;
    CGEventPost(kCGHIDEventTap, move);
    CFRelease(move);
    return 0;
}

// Post a button press or release at the current cursor position.
// button: 0=left, 1=right, 2=middle. down: 1=press, 0=release.
static int cg_mouse_button(int button, int down) {
    CGEventRef probe = CGEventCreate(NULL);
    CGPoint point = CGEventGetLocation(probe);
    CFRelease(probe);

    CGEventType type;
    CGMouseButton cgButton;
    switch (button) {
        case 1:
            cgButton = kCGMouseButtonRight;
            type = down ? kCGEventRightMouseDown : kCGEventRightMouseUp;
            break;
        case 2:
            cgButton = kCGMouseButtonCenter;
            type = down ? kCGEventOtherMouseDown : kCGEventOtherMouseUp;
            break;
        default:
            cgButton = kCGMouseButtonLeft;
            type = down ? kCGEventLeftMouseDown : kCGEventLeftMouseUp;
            break;
    }

    CGEventRef event = CGEventCreateMouseEvent(NULL, type, point, cgButton);
    if (!event) return -1;
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
    return 0;
}

static int cg_scroll(int dx, int dy) {
    CGEventRef event = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 2, dy, dx);
    if (!event) return -1;
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
    return 0;
}

static int cg_button_state(int button) {
    return CGEventSourceButtonState(kCGEventSourceStateCombinedSessionState, button);
}
*/
import "C"

import (
	"fmt"
	"time"

	"github.com/deskhand/deskhand/internal/config"
	"github.com/deskhand/deskhand/internal/platform"
)

func quartzButton(button platform.MouseButton) (C.int, error) {
	switch button {
	case platform.MouseLeft:
		return 0, nil
	case platform.MouseRight:
		return 1, nil
	case platform.MouseMiddle:
		return 2, nil
	default:
		// The HID event tap has no stable mapping for the side buttons.
		return 0, &platform.UnsupportedButtonError{Button: button}
	}
}

// MousePosition reads the cursor location from a throwaway event.
func (b *Backend) MousePosition() (platform.Point, error) {
	var x, y C.double
	C.cg_mouse_position(&x, &y)
	return platform.Point{X: int(x), Y: int(y)}, nil
}

// MouseMoveTo warps the cursor to absolute coordinates. A positive duration
// interpolates a linear path, sleeping between samples.
func (b *Backend) MouseMoveTo(x, y int, duration time.Duration) error {
	if duration <= 0 {
		return b.warpTo(x, y)
	}

	start, err := b.MousePosition()
	if err != nil {
		return err
	}
	end := platform.Point{X: x, Y: y}
	steps := platform.PathSteps(duration, config.Get().MoveStepsPerSecond)
	pause := duration / time.Duration(steps)

	for i := 1; i <= steps; i++ {
		p := platform.PathPoint(start, end, i, steps)
		if err := b.warpTo(p.X, p.Y); err != nil {
			return err
		}
		time.Sleep(pause)
	}
	return nil
}

// MouseMoveRel moves the cursor relative to its current position.
func (b *Backend) MouseMoveRel(dx, dy int, duration time.Duration) error {
	pos, err := b.MousePosition()
	if err != nil {
		return err
	}
	return b.MouseMoveTo(pos.X+dx, pos.Y+dy, duration)
}

// MousePress posts a button-down event at the current cursor position.
func (b *Backend) MousePress(button platform.MouseButton) error {
	num, err := quartzButton(button)
	if err != nil {
		return err
	}
	if C.cg_mouse_button(num, 1) != 0 {
		return fmt.Errorf("failed to post %s button down", button)
	}
	return nil
}

// MouseRelease posts a button-up event at the current cursor position.
func (b *Backend) MouseRelease(button platform.MouseButton) error {
	num, err := quartzButton(button)
	if err != nil {
		return err
	}
	if C.cg_mouse_button(num, 0) != 0 {
		return fmt.Errorf("failed to post %s button up", button)
	}
	return nil
}

// MouseScroll posts one line-unit scroll wheel event. Positive dy scrolls up,
// positive dx scrolls right; Quartz uses the opposite horizontal sign.
func (b *Backend) MouseScroll(dx, dy int) error {
	if C.cg_scroll(C.int(-dx), C.int(dy)) != 0 {
		return fmt.Errorf("failed to post scroll event")
	}
	return nil
}

// MouseIsPressed queries the combined session button state.
func (b *Backend) MouseIsPressed(button platform.MouseButton) (bool, error) {
	num, err := quartzButton(button)
	if err != nil {
		return false, err
	}
	return C.cg_button_state(num) != 0, nil
}

func (b *Backend) warpTo(x, y int) error {
	if C.cg_mouse_move(C.double(x), C.double(y)) != 0 {
		return fmt.Errorf("failed to post mouse move")
	}
	return nil
}
