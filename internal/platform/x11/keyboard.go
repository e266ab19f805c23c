//go:build linux

package x11

import (
	"fmt"
	"time"
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"

	"github.com/deskhand/deskhand/internal/config"
	"github.com/deskhand/deskhand/internal/platform"
)

// KeyPress posts a key-down event for the named key.
func (b *Backend) KeyPress(key platform.Key) error {
	code, err := b.keycodeFor(key)
	if err != nil {
		return err
	}
	return b.fakeKey(fakeKeyPress, code)
}

// KeyRelease posts a key-up event for the named key.
func (b *Backend) KeyRelease(key platform.Key) error {
	code, err := b.keycodeFor(key)
	if err != nil {
		return err
	}
	return b.fakeKey(fakeKeyRelease, code)
}

// KeyIsPressed checks the server keymap bit for the key's keycode.
func (b *Backend) KeyIsPressed(key platform.Key) (bool, error) {
	code, err := b.keycodeFor(key)
	if err != nil {
		return false, err
	}
	reply, err := xproto.QueryKeymap(b.xu.Conn()).Reply()
	if err != nil {
		return false, fmt.Errorf("query keymap failed: %w", err)
	}
	byteIdx := int(code) / 8
	if byteIdx >= len(reply.Keys) {
		return false, nil
	}
	return reply.Keys[byteIdx]&(1<<(uint(code)%8)) != 0, nil
}

// TypeUnicode types text one character at a time. Uppercase letters and
// shifted punctuation hold Shift around the base keycode. Characters with no
// keycode on the current layout fail the whole operation; X11 offers no
// direct Unicode injection path.
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
	if unicode.IsUpper(r) {
		base = unicode.ToLower(r)
		shifted = true
	} else if name, ok := shiftedSyms[r]; ok {
		return b.typeShiftedSym(r, name)
	}

	key := platform.Key(string(base))
	code, err := b.keycodeFor(key)
	if err != nil {
		return &platform.NotImplementedError{
			Feature:  fmt.Sprintf("typing character %q", r),
			Platform: "x11",
		}
	}
	if shifted {
		return b.withShift(func() error { return b.tapKeycode(code) })
	}
	return b.tapKeycode(code)
}

// shiftedSyms maps shifted US-layout punctuation to its keysym name so the
// base keycode can be found regardless of the character's own keysym mapping.
var shiftedSyms = map[rune]string{
	'!': "exclam", '@': "at", '#': "numbersign", '$': "dollar",
	'%': "percent", '^': "asciicircum", '&': "ampersand", '*': "asterisk",
	'(': "parenleft", ')': "parenright", '_': "underscore", '+': "plus",
	'{': "braceleft", '}': "braceright", '|': "bar", ':': "colon",
	'"': "quotedbl", '<': "less", '>': "greater", '?': "question",
	'~': "asciitilde",
}

func (b *Backend) typeShiftedSym(r rune, name string) error {
	code, err := b.keycodeFor(platform.Key(name))
	if err != nil {
		return &platform.NotImplementedError{
			Feature:  fmt.Sprintf("typing character %q", r),
			Platform: "x11",
		}
	}
	return b.withShift(func() error { return b.tapKeycode(code) })
}

func (b *Backend) withShift(fn func() error) error {
	shift, err := b.keycodeFor(platform.KeyShift)
	if err != nil {
		return err
	}
	if err := b.fakeKey(fakeKeyPress, shift); err != nil {
		return err
	}
	if err := fn(); err != nil {
		b.fakeKey(fakeKeyRelease, shift)
		return err
	}
	return b.fakeKey(fakeKeyRelease, shift)
}

func (b *Backend) tapKeycode(code xproto.Keycode) error {
	if err := b.fakeKey(fakeKeyPress, code); err != nil {
		return err
	}
	return b.fakeKey(fakeKeyRelease, code)
}

// KeyboardLayout reports the active layout group name from the XKB root
// property when present, falling back to a generic identifier.
func (b *Backend) KeyboardLayout() (string, error) {
	if names, err := b.propString(b.root, "_XKB_RULES_NAMES"); err == nil && names != "" {
		return names, nil
	}
	return "x11", nil
}

func (b *Backend) fakeKey(eventType byte, code xproto.Keycode) error {
	err := xtest.FakeInputChecked(b.xu.Conn(), eventType, byte(code),
		xproto.TimeCurrentTime, b.root, 0, 0, 0).Check()
	if err != nil {
		return fmt.Errorf("fake key %d failed: %w", code, err)
	}
	b.sync()
	return nil
}
