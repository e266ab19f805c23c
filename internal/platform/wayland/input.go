//go:build linux

package wayland

import (
	"fmt"
	"time"
	"unicode"

	"github.com/deskhand/deskhand/internal/config"
	"github.com/deskhand/deskhand/internal/platform"
)

// MousePosition returns the client-side tracked cursor position. Motion from
// other input devices is not observable under Wayland.
func (b *Backend) MousePosition() (platform.Point, error) {
	return b.pos, nil
}

// MouseMoveTo emits the relative delta from the tracked position. A positive
// duration interpolates a linear path, sleeping between samples.
func (b *Backend) MouseMoveTo(x, y int, duration time.Duration) error {
	if duration <= 0 {
		return b.moveBy(x-b.pos.X, y-b.pos.Y)
	}

	start := b.pos
	end := platform.Point{X: x, Y: y}
	steps := platform.PathSteps(duration, config.Get().MoveStepsPerSecond)
	pause := duration / time.Duration(steps)

	for i := 1; i <= steps; i++ {
		p := platform.PathPoint(start, end, i, steps)
		if err := b.moveBy(p.X-b.pos.X, p.Y-b.pos.Y); err != nil {
			return err
		}
		time.Sleep(pause)
	}
	return nil
}

// MouseMoveRel moves the cursor relative to its tracked position.
func (b *Backend) MouseMoveRel(dx, dy int, duration time.Duration) error {
	return b.MouseMoveTo(b.pos.X+dx, b.pos.Y+dy, duration)
}

func (b *Backend) moveBy(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	if err := b.mouse.Move(int32(dx), int32(dy)); err != nil {
		return fmt.Errorf("uinput move failed: %w", err)
	}
	b.pos.X += dx
	b.pos.Y += dy
	return nil
}

// MousePress emits a button-down event.
func (b *Backend) MousePress(button platform.MouseButton) error {
	var err error
	switch button {
	case platform.MouseLeft:
		err = b.mouse.LeftPress()
	case platform.MouseRight:
		err = b.mouse.RightPress()
	case platform.MouseMiddle:
		err = b.mouse.MiddlePress()
	default:
		return &platform.UnsupportedButtonError{Button: button}
	}
	if err != nil {
		return fmt.Errorf("uinput press failed: %w", err)
	}
	b.buttonsDown[button] = true
	return nil
}

// MouseRelease emits a button-up event.
func (b *Backend) MouseRelease(button platform.MouseButton) error {
	var err error
	switch button {
	case platform.MouseLeft:
		err = b.mouse.LeftRelease()
	case platform.MouseRight:
		err = b.mouse.RightRelease()
	case platform.MouseMiddle:
		err = b.mouse.MiddleRelease()
	default:
		return &platform.UnsupportedButtonError{Button: button}
	}
	if err != nil {
		return fmt.Errorf("uinput release failed: %w", err)
	}
	b.buttonsDown[button] = false
	return nil
}

// MouseScroll emits wheel events, vertical axis first.
func (b *Backend) MouseScroll(dx, dy int) error {
	if dy != 0 {
		if err := b.mouse.Wheel(false, int32(dy)); err != nil {
			return fmt.Errorf("uinput wheel failed: %w", err)
		}
	}
	if dx != 0 {
		if err := b.mouse.Wheel(true, int32(dx)); err != nil {
			return fmt.Errorf("uinput wheel failed: %w", err)
		}
	}
	return nil
}

// MouseIsPressed reports the tracked state of buttons this process pressed.
// Hardware button state is not observable under Wayland.
func (b *Backend) MouseIsPressed(button platform.MouseButton) (bool, error) {
	switch button {
	case platform.MouseLeft, platform.MouseRight, platform.MouseMiddle:
		return b.buttonsDown[button], nil
	default:
		return false, &platform.UnsupportedButtonError{Button: button}
	}
}

// KeyPress emits a key-down event.
func (b *Backend) KeyPress(key platform.Key) error {
	code, ok := eventCodeFor(key)
	if !ok {
		return &platform.UnknownKeyError{Key: key.Normalize()}
	}
	if err := b.keyboard.KeyDown(code); err != nil {
		return fmt.Errorf("uinput key down failed: %w", err)
	}
	b.keysDown[key.Normalize()] = true
	return nil
}

// KeyRelease emits a key-up event.
func (b *Backend) KeyRelease(key platform.Key) error {
	code, ok := eventCodeFor(key)
	if !ok {
		return &platform.UnknownKeyError{Key: key.Normalize()}
	}
	if err := b.keyboard.KeyUp(code); err != nil {
		return fmt.Errorf("uinput key up failed: %w", err)
	}
	b.keysDown[key.Normalize()] = false
	return nil
}

// KeyIsPressed reports the tracked state of keys this process pressed.
func (b *Backend) KeyIsPressed(key platform.Key) (bool, error) {
	if _, ok := eventCodeFor(key); !ok {
		return false, &platform.UnknownKeyError{Key: key.Normalize()}
	}
	return b.keysDown[key.Normalize()], nil
}

// TypeUnicode types text through the virtual keyboard, assuming a US layout
// in the compositor. Characters outside the event-code table fail the whole
// operation; uinput has no Unicode injection path.
func (b *Backend) TypeUnicode(text string) error {
	delay := config.Get().TypeKeyDelay
	for _, r := range text {
		if err := b.typeRune(r); err != nil {
			return err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}

func (b *Backend) typeRune(r rune) error {
	base := r
	shifted := false
	if unicode.IsUpper(r) && r < 128 {
		base = unicode.ToLower(r)
		shifted = true
	} else if unshifted, ok := shiftedChars[r]; ok {
		base = unshifted
		shifted = true
	}

	code, ok := eventCodeFor(platform.Key(string(base)))
	if !ok {
		return &platform.NotImplementedError{
			Feature:  fmt.Sprintf("typing character %q", r),
			Platform: "wayland",
		}
	}
	if shifted {
		if err := b.keyboard.KeyDown(eventCodes[platform.KeyShift]); err != nil {
			return fmt.Errorf("uinput key down failed: %w", err)
		}
		defer b.keyboard.KeyUp(eventCodes[platform.KeyShift])
	}
	if err := b.keyboard.KeyPress(code); err != nil {
		return fmt.Errorf("uinput key press failed: %w", err)
	}
	return nil
}

// KeyboardLayout reports a fixed identifier; the compositor does not expose
// its layout to clients.
func (b *Backend) KeyboardLayout() (string, error) {
	return "wayland", nil
}
