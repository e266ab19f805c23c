//go:build linux

package wayland

import (
	"github.com/ThomasT75/uinput"

	"github.com/deskhand/deskhand/internal/platform"
)

// eventCodes maps normalized key names to Linux input event codes.
var eventCodes = map[platform.Key]int{
	"a": uinput.KeyA, "b": uinput.KeyB, "c": uinput.KeyC, "d": uinput.KeyD,
	"e": uinput.KeyE, "f": uinput.KeyF, "g": uinput.KeyG, "h": uinput.KeyH,
	"i": uinput.KeyI, "j": uinput.KeyJ, "k": uinput.KeyK, "l": uinput.KeyL,
	"m": uinput.KeyM, "n": uinput.KeyN, "o": uinput.KeyO, "p": uinput.KeyP,
	"q": uinput.KeyQ, "r": uinput.KeyR, "s": uinput.KeyS, "t": uinput.KeyT,
	"u": uinput.KeyU, "v": uinput.KeyV, "w": uinput.KeyW, "x": uinput.KeyX,
	"y": uinput.KeyY, "z": uinput.KeyZ,

	"0": uinput.Key0, "1": uinput.Key1, "2": uinput.Key2, "3": uinput.Key3,
	"4": uinput.Key4, "5": uinput.Key5, "6": uinput.Key6, "7": uinput.Key7,
	"8": uinput.Key8, "9": uinput.Key9,

	platform.KeyEnter:     uinput.KeyEnter,
	platform.KeyReturn:    uinput.KeyEnter,
	platform.KeyTab:       uinput.KeyTab,
	platform.KeySpace:     uinput.KeySpace,
	platform.KeyBackspace: uinput.KeyBackspace,
	platform.KeyDelete:    uinput.KeyDelete,
	platform.KeyEscape:    uinput.KeyEsc,
	"esc":                 uinput.KeyEsc,
	platform.KeyShift:     uinput.KeyLeftshift,
	platform.KeyCtrl:      uinput.KeyLeftctrl,
	"control":             uinput.KeyLeftctrl,
	platform.KeyAlt:       uinput.KeyLeftalt,
	platform.KeyCmd:       uinput.KeyLeftmeta,
	"command":             uinput.KeyLeftmeta,
	"super":               uinput.KeyLeftmeta,
	"meta":                uinput.KeyLeftmeta,
	"win":                 uinput.KeyLeftmeta,
	"capslock":            uinput.KeyCapslock,
	"caps_lock":           uinput.KeyCapslock,
	platform.KeyUp:        uinput.KeyUp,
	platform.KeyDown:      uinput.KeyDown,
	platform.KeyLeft:      uinput.KeyLeft,
	platform.KeyRight:     uinput.KeyRight,
	platform.KeyHome:      uinput.KeyHome,
	platform.KeyEnd:       uinput.KeyEnd,
	platform.KeyPageUp:    uinput.KeyPageup,
	"page_up":             uinput.KeyPageup,
	platform.KeyPageDown:  uinput.KeyPagedown,
	"page_down":           uinput.KeyPagedown,

	"f1": uinput.KeyF1, "f2": uinput.KeyF2, "f3": uinput.KeyF3,
	"f4": uinput.KeyF4, "f5": uinput.KeyF5, "f6": uinput.KeyF6,
	"f7": uinput.KeyF7, "f8": uinput.KeyF8, "f9": uinput.KeyF9,
	"f10": uinput.KeyF10, "f11": uinput.KeyF11, "f12": uinput.KeyF12,

	"-": uinput.KeyMinus, "=": uinput.KeyEqual,
	"[": uinput.KeyLeftbrace, "]": uinput.KeyRightbrace,
	"\\": uinput.KeyBackslash, ";": uinput.KeySemicolon,
	"'": uinput.KeyApostrophe, ",": uinput.KeyComma,
	".": uinput.KeyDot, "/": uinput.KeySlash, "`": uinput.KeyGrave,
}

// shiftedChars maps shifted US-layout characters to their base key.
var shiftedChars = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/',
	'~': '`',
}

// eventCodeFor resolves a normalized key to its input event code.
func eventCodeFor(key platform.Key) (int, bool) {
	code, ok := eventCodes[key.Normalize()]
	return code, ok
}
