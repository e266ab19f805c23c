//go:build linux

package wayland

import (
	"testing"

	"github.com/deskhand/deskhand/internal/platform"
)

const sampleWlrRandr = `[
  {
    "name": "DP-1",
    "enabled": true,
    "scale": 2.0,
    "primary": true,
    "transform": "normal",
    "position": {"x": 0, "y": 0},
    "modes": [
      {"width": 1920, "height": 1080, "refresh": 60.0, "current": false},
      {"width": 3840, "height": 2160, "refresh": 59.997, "current": true}
    ]
  },
  {
    "name": "HDMI-A-1",
    "enabled": true,
    "scale": 1.0,
    "transform": "90",
    "position": {"x": 1920, "y": 0},
    "modes": [
      {"width": 1280, "height": 1024, "refresh": 75.025, "current": true}
    ]
  },
  {
    "name": "eDP-1",
    "enabled": false,
    "modes": []
  }
]`

func TestParseWlrRandr(t *testing.T) {
	displays, err := parseWlrRandr([]byte(sampleWlrRandr))
	if err != nil {
		t.Fatalf("parseWlrRandr: %v", err)
	}
	if len(displays) != 2 {
		t.Fatalf("got %d displays, want 2 (disabled output must be skipped)", len(displays))
	}

	dp := displays[0]
	if dp.ID != "DP-1" || !dp.IsPrimary {
		t.Errorf("first display = %q primary=%v, want DP-1 primary", dp.ID, dp.IsPrimary)
	}
	if dp.Bounds != (platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}) {
		t.Errorf("logical bounds = %+v, want scaled-down 1920x1080", dp.Bounds)
	}
	if dp.PhysicalSize != (platform.Size{Width: 3840, Height: 2160}) {
		t.Errorf("physical size = %+v, want current mode pixels", dp.PhysicalSize)
	}
	if dp.RefreshRate < 59.9 || dp.RefreshRate > 60.1 {
		t.Errorf("refresh = %v, want ~60", dp.RefreshRate)
	}

	hdmi := displays[1]
	if hdmi.IsPrimary {
		t.Error("second display must not be primary")
	}
	if hdmi.Rotation != 90 {
		t.Errorf("rotation = %d, want 90", hdmi.Rotation)
	}
	if hdmi.Bounds.X != 1920 {
		t.Errorf("position x = %d, want 1920", hdmi.Bounds.X)
	}
}

func TestParseWlrRandrNoPrimary(t *testing.T) {
	data := `[{"name": "X", "enabled": true, "scale": 1,
		"modes": [{"width": 800, "height": 600, "current": true}]}]`
	displays, err := parseWlrRandr([]byte(data))
	if err != nil {
		t.Fatalf("parseWlrRandr: %v", err)
	}
	if !displays[0].IsPrimary {
		t.Error("sole display must be normalized to primary")
	}
}

func TestParseWlrRandrInvalid(t *testing.T) {
	if _, err := parseWlrRandr([]byte("not json")); err == nil {
		t.Error("expected error for malformed output")
	}
	if _, err := parseWlrRandr([]byte("[]")); err == nil {
		t.Error("expected error for empty output list")
	}
}

func TestTransformDegrees(t *testing.T) {
	tests := []struct {
		transform string
		want      int
	}{
		{"normal", 0},
		{"90", 90},
		{"flipped-180", 180},
		{"270", 270},
		{"", 0},
	}
	for _, tt := range tests {
		if got := transformDegrees(tt.transform); got != tt.want {
			t.Errorf("transformDegrees(%q) = %d, want %d", tt.transform, got, tt.want)
		}
	}
}

func TestEventCodeFor(t *testing.T) {
	for _, key := range []platform.Key{"a", "z", "0", "enter", "return", "shift", "cmd", "f12", "pageup", ";"} {
		if _, ok := eventCodeFor(key); !ok {
			t.Errorf("eventCodeFor(%q): no mapping", key)
		}
	}
	if _, ok := eventCodeFor("é"); ok {
		t.Error("expected no event code for non-ASCII character")
	}
}

func TestShiftedChars(t *testing.T) {
	tests := []struct {
		shifted rune
		base    rune
	}{
		{'!', '1'}, {'@', '2'}, {'_', '-'}, {'?', '/'}, {'~', '`'},
	}
	for _, tt := range tests {
		got, ok := shiftedChars[tt.shifted]
		if !ok || got != tt.base {
			t.Errorf("shiftedChars[%q] = %q, want %q", tt.shifted, got, tt.base)
		}
	}
}
