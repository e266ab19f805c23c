//go:build darwin && cgo

package darwin

import "github.com/deskhand/deskhand/internal/platform"

// virtualKeycodes maps normalized key names to Carbon virtual key codes for
// the ANSI layout. Characters outside this table go through direct Unicode
// event injection instead.
var virtualKeycodes = map[platform.Key]uint16{
	"a": 0x00, "b": 0x0B, "c": 0x08, "d": 0x02, "e": 0x0E,
	"f": 0x03, "g": 0x05, "h": 0x04, "i": 0x22, "j": 0x26,
	"k": 0x28, "l": 0x25, "m": 0x2E, "n": 0x2D, "o": 0x1F,
	"p": 0x23, "q": 0x0C, "r": 0x0F, "s": 0x01, "t": 0x11,
	"u": 0x20, "v": 0x09, "w": 0x0D, "x": 0x07, "y": 0x10,
	"z": 0x06,

	"0": 0x1D, "1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15,
	"5": 0x17, "6": 0x16, "7": 0x1A, "8": 0x1C, "9": 0x19,

	platform.KeyEnter:     0x24,
	platform.KeyReturn:    0x24,
	platform.KeyTab:       0x30,
	platform.KeySpace:     0x31,
	platform.KeyBackspace: 0x33,
	platform.KeyDelete:    0x75,
	platform.KeyEscape:    0x35,
	"esc":                 0x35,
	platform.KeyShift:     0x38,
	platform.KeyCtrl:      0x3B,
	"control":             0x3B,
	platform.KeyAlt:       0x3A,
	"option":              0x3A,
	platform.KeyCmd:       0x37,
	"command":             0x37,
	"meta":                0x37,
	platform.KeyLeft:      0x7B,
	platform.KeyRight:     0x7C,
	platform.KeyUp:        0x7E,
	platform.KeyDown:      0x7D,
	platform.KeyHome:      0x73,
	platform.KeyEnd:       0x77,
	platform.KeyPageUp:    0x74,
	"page_up":             0x74,
	platform.KeyPageDown:  0x79,
	"page_down":           0x79,

	"f1": 0x7A, "f2": 0x78, "f3": 0x63, "f4": 0x76,
	"f5": 0x60, "f6": 0x61, "f7": 0x62, "f8": 0x64,
	"f9": 0x65, "f10": 0x6D, "f11": 0x67, "f12": 0x6F,
	"f13": 0x69, "f14": 0x6B, "f15": 0x71,

	"capslock":  0x39,
	"caps_lock": 0x39,

	"-": 0x1B, "=": 0x18, "[": 0x21, "]": 0x1E, "\\": 0x2A,
	";": 0x29, "'": 0x27, ",": 0x2B, ".": 0x2F, "/": 0x2C,
	"`": 0x32,
}

// keycodeFor resolves a normalized key to its virtual key code.
func keycodeFor(key platform.Key) (uint16, bool) {
	code, ok := virtualKeycodes[key.Normalize()]
	return code, ok
}
