//go:build linux

package x11

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"

	"github.com/deskhand/deskhand/internal/config"
	"github.com/deskhand/deskhand/internal/platform"
)

// X event codes consumed by XTEST FakeInput.
const (
	fakeKeyPress      = 2
	fakeKeyRelease    = 3
	fakeButtonPress   = 4
	fakeButtonRelease = 5
	fakeMotionNotify  = 6
)

// Core-protocol button numbers. Buttons 4-7 are scroll detents, 8 and 9 the
// back/forward side buttons.
const (
	buttonLeft        byte = 1
	buttonMiddle      byte = 2
	buttonRight       byte = 3
	buttonScrollUp    byte = 4
	buttonScrollDown  byte = 5
	buttonScrollLeft  byte = 6
	buttonScrollRight byte = 7
	buttonBack        byte = 8
	buttonForward     byte = 9
)

func buttonNumber(button platform.MouseButton) (byte, error) {
	switch button {
	case platform.MouseLeft:
		return buttonLeft, nil
	case platform.MouseMiddle:
		return buttonMiddle, nil
	case platform.MouseRight:
		return buttonRight, nil
	case platform.MouseX1:
		return buttonBack, nil
	case platform.MouseX2:
		return buttonForward, nil
	default:
		return 0, &platform.UnsupportedButtonError{Button: button}
	}
}

// MousePosition queries the pointer location relative to the root window.
func (b *Backend) MousePosition() (platform.Point, error) {
	reply, err := xproto.QueryPointer(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return platform.Point{}, fmt.Errorf("query pointer failed: %w", err)
	}
	return platform.Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

// MouseMoveTo warps the pointer to absolute root coordinates. A positive
// duration interpolates a linear path, sleeping between samples.
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

// MouseMoveRel moves the pointer relative to its current position.
func (b *Backend) MouseMoveRel(dx, dy int, duration time.Duration) error {
	pos, err := b.MousePosition()
	if err != nil {
		return err
	}
	return b.MouseMoveTo(pos.X+dx, pos.Y+dy, duration)
}

// MousePress posts a button-down event at the current pointer position.
func (b *Backend) MousePress(button platform.MouseButton) error {
	num, err := buttonNumber(button)
	if err != nil {
		return err
	}
	return b.fakeButton(fakeButtonPress, num)
}

// MouseRelease posts a button-up event at the current pointer position.
func (b *Backend) MouseRelease(button platform.MouseButton) error {
	num, err := buttonNumber(button)
	if err != nil {
		return err
	}
	return b.fakeButton(fakeButtonRelease, num)
}

// MouseScroll emits discrete scroll detents. X11 has no smooth-scroll fake
// input, so each unit becomes one press/release pair on the scroll buttons.
func (b *Backend) MouseScroll(dx, dy int) error {
	for _, click := range scrollClicks(dx, dy) {
		if err := b.fakeButton(fakeButtonPress, click); err != nil {
			return err
		}
		if err := b.fakeButton(fakeButtonRelease, click); err != nil {
			return err
		}
	}
	return nil
}

// scrollClicks decomposes a scroll delta into an ordered list of button
// numbers, vertical before horizontal. Positive dy scrolls up, positive dx
// scrolls right.
func scrollClicks(dx, dy int) []byte {
	var clicks []byte
	vb, vn := buttonScrollUp, dy
	if dy < 0 {
		vb, vn = buttonScrollDown, -dy
	}
	for i := 0; i < vn; i++ {
		clicks = append(clicks, vb)
	}
	hb, hn := buttonScrollRight, dx
	if dx < 0 {
		hb, hn = buttonScrollLeft, -dx
	}
	for i := 0; i < hn; i++ {
		clicks = append(clicks, hb)
	}
	return clicks
}

// MouseIsPressed inspects the pointer button mask from QueryPointer. The side
// buttons report through mask bits 4 and 5, the best the core protocol
// exposes for them.
func (b *Backend) MouseIsPressed(button platform.MouseButton) (bool, error) {
	reply, err := xproto.QueryPointer(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return false, fmt.Errorf("query pointer failed: %w", err)
	}
	var mask uint16
	switch button {
	case platform.MouseLeft:
		mask = xproto.ButtonMask1
	case platform.MouseMiddle:
		mask = xproto.ButtonMask2
	case platform.MouseRight:
		mask = xproto.ButtonMask3
	case platform.MouseX1:
		mask = xproto.ButtonMask4
	case platform.MouseX2:
		mask = xproto.ButtonMask5
	default:
		return false, &platform.UnsupportedButtonError{Button: button}
	}
	return reply.Mask&mask != 0, nil
}

func (b *Backend) warpTo(x, y int) error {
	err := xtest.FakeInputChecked(b.xu.Conn(), fakeMotionNotify, 0,
		xproto.TimeCurrentTime, b.root, int16(x), int16(y), 0).Check()
	if err != nil {
		return fmt.Errorf("fake motion failed: %w", err)
	}
	b.sync()
	return nil
}

func (b *Backend) fakeButton(eventType byte, button byte) error {
	err := xtest.FakeInputChecked(b.xu.Conn(), eventType, button,
		xproto.TimeCurrentTime, b.root, 0, 0, 0).Check()
	if err != nil {
		return fmt.Errorf("fake button %d failed: %w", button, err)
	}
	b.sync()
	return nil
}
