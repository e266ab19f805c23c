//go:build linux

package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"
)

// propString reads a window property and returns its value as a single
// string. Null-separated lists are joined with "/".
func (b *Backend) propString(win xproto.Window, name string) (string, error) {
	reply, err := xprop.GetProperty(b.xu, win, name)
	if err != nil {
		return "", err
	}
	parts, err := xprop.PropValStrs(reply, nil)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, "/"), nil
}

// propCardinal reads a single 32-bit cardinal property.
func (b *Backend) propCardinal(win xproto.Window, name string) (uint, error) {
	reply, err := xprop.GetProperty(b.xu, win, name)
	if err != nil {
		return 0, err
	}
	return xprop.PropValNum(reply, nil)
}

// atom interns an atom name.
func (b *Backend) atom(name string) (xproto.Atom, error) {
	return xprop.Atm(b.xu, name)
}
