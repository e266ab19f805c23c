//go:build linux

package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/deskhand/deskhand/internal/platform"
)

func TestButtonNumber(t *testing.T) {
	tests := []struct {
		button platform.MouseButton
		want   byte
	}{
		{platform.MouseLeft, 1},
		{platform.MouseMiddle, 2},
		{platform.MouseRight, 3},
		{platform.MouseX1, 8},
		{platform.MouseX2, 9},
	}
	for _, tt := range tests {
		got, err := buttonNumber(tt.button)
		if err != nil {
			t.Fatalf("buttonNumber(%s): %v", tt.button, err)
		}
		if got != tt.want {
			t.Errorf("buttonNumber(%s) = %d, want %d", tt.button, got, tt.want)
		}
	}

	if _, err := buttonNumber(platform.MouseButton(42)); err == nil {
		t.Error("expected error for unknown button")
	}
}

func TestScrollClicks(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   []byte
	}{
		{"up", 0, 2, []byte{4, 4}},
		{"down", 0, -1, []byte{5}},
		{"right", 3, 0, []byte{7, 7, 7}},
		{"left", -2, 0, []byte{6, 6}},
		{"vertical before horizontal", 1, 1, []byte{4, 7}},
		{"none", 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollClicks(tt.dx, tt.dy)
			if len(got) != len(tt.want) {
				t.Fatalf("scrollClicks(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("click %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKeysymName(t *testing.T) {
	tests := []struct {
		key  platform.Key
		want string
	}{
		{"enter", "Return"},
		{"return", "Return"},
		{"esc", "Escape"},
		{"ctrl", "Control_L"},
		{"cmd", "Super_L"},
		{"command", "Super_L"},
		{"win", "Super_L"},
		{"page_up", "Page_Up"},
		{"pageup", "Page_Up"},
		{"f5", "F5"},
		{"a", "a"},
		{"7", "7"},
	}
	for _, tt := range tests {
		if got := keysymName(tt.key); got != tt.want {
			t.Errorf("keysymName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestStateFromAtoms(t *testing.T) {
	tests := []struct {
		name  string
		atoms []string
		want  platform.WindowState
	}{
		{"empty", nil, platform.WindowNormal},
		{"fullscreen wins", []string{stateMaxVert, stateMaxHorz, stateFullscreen}, platform.WindowFullscreen},
		{"hidden", []string{stateHidden}, platform.WindowMinimized},
		{"both axes maximized", []string{stateMaxVert, stateMaxHorz}, platform.WindowMaximized},
		{"one axis is not maximized", []string{stateMaxVert}, platform.WindowNormal},
		{"above alone is normal", []string{stateAbove}, platform.WindowNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stateFromAtoms(tt.atoms); got != tt.want {
				t.Errorf("stateFromAtoms(%v) = %s, want %s", tt.atoms, got, tt.want)
			}
		})
	}
}

func TestRefreshRate(t *testing.T) {
	// 1920x1080@60: dotclock 148500000, htotal 2200, vtotal 1125.
	mode := randr.ModeInfo{DotClock: 148500000, Htotal: 2200, Vtotal: 1125}
	got := refreshRate(mode)
	if got < 59.9 || got > 60.1 {
		t.Errorf("refreshRate = %v, want ~60", got)
	}

	if got := refreshRate(randr.ModeInfo{}); got != 60.0 {
		t.Errorf("refreshRate(zero mode) = %v, want 60 fallback", got)
	}
}

func TestRotationDegrees(t *testing.T) {
	tests := []struct {
		rotation uint16
		want     int
	}{
		{randr.RotationRotate0, 0},
		{randr.RotationRotate90, 90},
		{randr.RotationRotate180, 180},
		{randr.RotationRotate270, 270},
	}
	for _, tt := range tests {
		if got := rotationDegrees(tt.rotation); got != tt.want {
			t.Errorf("rotationDegrees(%d) = %d, want %d", tt.rotation, got, tt.want)
		}
	}
}

func TestClipRect(t *testing.T) {
	bounds := platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	// Panel at the top reserves 30 pixels.
	wa := platform.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}
	got := clipRect(wa, bounds)
	if got != wa {
		t.Errorf("clipRect = %+v, want %+v", got, wa)
	}

	// No published work area falls back to bounds.
	if got := clipRect(platform.Rect{}, bounds); got != bounds {
		t.Errorf("clipRect(empty) = %+v, want bounds", got)
	}

	// Second monitor outside the work area keeps its own bounds.
	second := platform.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}
	if got := clipRect(platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, second); got != second {
		t.Errorf("clipRect(disjoint) = %+v, want second monitor bounds", got)
	}
}

func TestAtomsToBytes(t *testing.T) {
	got := atomsToBytes([]xproto.Atom{1, 0x0102})
	want := []byte{1, 0, 0, 0, 0x02, 0x01, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}
