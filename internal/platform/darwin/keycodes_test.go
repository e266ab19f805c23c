//go:build darwin && cgo

package darwin

import (
	"testing"

	"github.com/deskhand/deskhand/internal/platform"
)

func TestKeycodeFor(t *testing.T) {
	tests := []struct {
		key  platform.Key
		want uint16
	}{
		{"a", 0x00},
		{"A", 0x00},
		{"z", 0x06},
		{"enter", 0x24},
		{"return", 0x24},
		{"ESC", 0x35},
		{"cmd", 0x37},
		{"command", 0x37},
		{"meta", 0x37},
		{"delete", 0x75},
		{"backspace", 0x33},
		{"f15", 0x71},
		{"capslock", 0x39},
		{" space ", 0x31},
	}
	for _, tt := range tests {
		got, ok := keycodeFor(tt.key)
		if !ok {
			t.Fatalf("keycodeFor(%q): no mapping", tt.key)
		}
		if got != tt.want {
			t.Errorf("keycodeFor(%q) = %#x, want %#x", tt.key, got, tt.want)
		}
	}

	if _, ok := keycodeFor("é"); ok {
		t.Error("expected no keycode for non-ASCII character")
	}
}
