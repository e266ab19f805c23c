//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework Carbon
#include <CoreGraphics/CoreGraphics.h>
#include <Carbon/Carbon.h>
#include <string.h>

static int cg_key_event(CGKeyCode code, int down) {
    CGEventRef event = CGEventCreateKeyboardEvent(NULL, code, down != 0);
    if (!event) return -1;
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
    return 0;
}

// Type a single UTF-16 unit through direct Unicode injection, bypassing the
// layout's keycode mapping entirely.
static void cg_type_unichar(UniChar ch) {
    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, 0, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, 0, false);
    CGEventKeyboardSetUnicodeString(keyDown, 1, &ch);
    CGEventKeyboardSetUnicodeString(keyUp, 1, &ch);
    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);
    CFRelease(keyDown);
    CFRelease(keyUp);
}

static int cg_key_state(CGKeyCode code) {
    return CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, code);
}

// Copy the active input source identifier into buf.
static int tis_layout_id(char *buf, int len) {
    TISInputSourceRef source = TISCopyCurrentKeyboardInputSource();
    if (!source) return -1;
    CFStringRef id = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceID);
    int ok = id && CFStringGetCString(id, buf, len, kCFStringEncodingUTF8);
    CFRelease(source);
    return ok ? 0 : -1;
}
*/
import "C"

import (
	"time"
	"unicode"
	"unicode/utf16"

	"github.com/deskhand/deskhand/internal/config"
	"github.com/deskhand/deskhand/internal/platform"
)

const shiftKeycode = 0x38

// KeyPress posts a key-down event for the named key.
func (b *Backend) KeyPress(key platform.Key) error {
	code, ok := keycodeFor(key)
	if !ok {
		return &platform.UnknownKeyError{Key: key.Normalize()}
	}
	C.cg_key_event(C.CGKeyCode(code), 1)
	return nil
}

// KeyRelease posts a key-up event for the named key.
func (b *Backend) KeyRelease(key platform.Key) error {
	code, ok := keycodeFor(key)
	if !ok {
		return &platform.UnknownKeyError{Key: key.Normalize()}
	}
	C.cg_key_event(C.CGKeyCode(code), 0)
	return nil
}

// KeyIsPressed queries the combined session key state.
func (b *Backend) KeyIsPressed(key platform.Key) (bool, error) {
	code, ok := keycodeFor(key)
	if !ok {
		return false, &platform.UnknownKeyError{Key: key.Normalize()}
	}
	return C.cg_key_state(C.CGKeyCode(code)) != 0, nil
}

// TypeUnicode types text one character at a time. Characters with a virtual
// keycode use press/release (with Shift held for uppercase); everything else
// is injected as a Unicode event so any character reaches the target.
func (b *Backend) TypeUnicode(text string) error {
	delay := config.Get().TypeKeyDelay
	for _, r := range text {
		b.typeRune(r)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}

func (b *Backend) typeRune(r rune) {
	base := r
	shifted := false
	if unicode.IsUpper(r) && r < 128 {
		base = unicode.ToLower(r)
		shifted = true
	}
	if code, ok := keycodeFor(platform.Key(string(base))); ok {
		if shifted {
			C.cg_key_event(shiftKeycode, 1)
		}
		C.cg_key_event(C.CGKeyCode(code), 1)
		C.cg_key_event(C.CGKeyCode(code), 0)
		if shifted {
			C.cg_key_event(shiftKeycode, 0)
		}
		return
	}
	for _, unit := range utf16.Encode([]rune{r}) {
		C.cg_type_unichar(C.UniChar(unit))
	}
}

// KeyboardLayout returns the active input source identifier, e.g.
// "com.apple.keylayout.US".
func (b *Backend) KeyboardLayout() (string, error) {
	buf := make([]C.char, 256)
	if C.tis_layout_id(&buf[0], C.int(len(buf))) != 0 {
		return "", &platform.NotImplementedError{Feature: "keyboard layout query", Platform: "macos"}
	}
	return C.GoString(&buf[0]), nil
}
