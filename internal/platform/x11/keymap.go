//go:build linux

package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/deskhand/deskhand/internal/platform"
)

// keysymNames maps normalized key names to X keysym names understood by the
// keybind string parser. Letters, digits and single punctuation characters
// are resolved directly and do not need entries here.
var keysymNames = map[platform.Key]string{
	platform.KeyEnter:     "Return",
	platform.KeyReturn:    "Return",
	platform.KeyTab:       "Tab",
	platform.KeySpace:     "space",
	platform.KeyBackspace: "BackSpace",
	platform.KeyDelete:    "Delete",
	platform.KeyEscape:    "Escape",
	"esc":                 "Escape",
	platform.KeyShift:     "Shift_L",
	platform.KeyCtrl:      "Control_L",
	"control":             "Control_L",
	platform.KeyAlt:       "Alt_L",
	platform.KeyCmd:       "Super_L",
	"command":             "Super_L",
	"super":               "Super_L",
	"win":                 "Super_L",
	"meta":                "Super_L",
	"capslock":            "Caps_Lock",
	"caps_lock":           "Caps_Lock",
	platform.KeyUp:        "Up",
	platform.KeyDown:      "Down",
	platform.KeyLeft:      "Left",
	platform.KeyRight:     "Right",
	platform.KeyHome:      "Home",
	platform.KeyEnd:       "End",
	platform.KeyPageUp:    "Page_Up",
	"page_up":             "Page_Up",
	platform.KeyPageDown:  "Page_Down",
	"page_down":           "Page_Down",
	"f1":                  "F1",
	"f2":                  "F2",
	"f3":                  "F3",
	"f4":                  "F4",
	"f5":                  "F5",
	"f6":                  "F6",
	"f7":                  "F7",
	"f8":                  "F8",
	"f9":                  "F9",
	"f10":                 "F10",
	"f11":                 "F11",
	"f12":                 "F12",
}

// keysymName resolves a normalized key to the keysym name to look up. Keys
// without an alias entry fall through unchanged, which covers letters, digits
// and most punctuation.
func keysymName(key platform.Key) string {
	if name, ok := keysymNames[key]; ok {
		return name
	}
	return string(key)
}

// buildKeymap resolves every aliased key against the server keymap once at
// startup. Unaliased keys are resolved on demand in keycodeFor.
func (b *Backend) buildKeymap() map[platform.Key]xproto.Keycode {
	m := make(map[platform.Key]xproto.Keycode, len(keysymNames))
	for key, name := range keysymNames {
		codes := keybind.StrToKeycodes(b.xu, name)
		if len(codes) > 0 {
			m[key] = codes[0]
		}
	}
	return m
}

// keycodeFor maps a normalized key name to a hardware keycode on the current
// server keymap.
func (b *Backend) keycodeFor(key platform.Key) (xproto.Keycode, error) {
	key = key.Normalize()
	if code, ok := b.keymap[key]; ok {
		return code, nil
	}
	codes := keybind.StrToKeycodes(b.xu, keysymName(key))
	if len(codes) == 0 || codes[0] == 0 {
		return 0, &platform.UnknownKeyError{Key: key}
	}
	b.keymap[key] = codes[0]
	return codes[0], nil
}
