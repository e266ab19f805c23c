package platform

import (
	"errors"
	"testing"
)

func TestNewBackend_UnsupportedWhenNoRegistration(t *testing.T) {
	// GetBackend memoizes, so exercise the construction path directly.
	orig := NewBackendFunc
	NewBackendFunc = nil
	defer func() { NewBackendFunc = orig }()

	if _, err := newBackend(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestGetBackend_FirstCallWins(t *testing.T) {
	orig := NewBackendFunc
	calls := 0
	NewBackendFunc = func() (Backend, error) {
		calls++
		return nil, ErrUnsupported
	}
	defer func() { NewBackendFunc = orig }()

	_, err1 := GetBackend()
	_, err2 := GetBackend()
	if calls > 1 {
		t.Errorf("constructor ran %d times, want at most 1", calls)
	}
	if !errors.Is(err1, err2) && err1 != err2 {
		t.Errorf("repeated calls should return the memoized result: %v vs %v", err1, err2)
	}
}

func TestWaylandSession(t *testing.T) {
	tests := []struct {
		name        string
		waylandDisp string
		sessionType string
		want        bool
	}{
		{"neither set", "", "", false},
		{"wayland display socket", "wayland-0", "", true},
		{"session type wayland", "", "wayland", true},
		{"session type x11", "", "x11", false},
		{"both set", "wayland-1", "wayland", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WAYLAND_DISPLAY", tt.waylandDisp)
			t.Setenv("XDG_SESSION_TYPE", tt.sessionType)
			if got := WaylandSession(); got != tt.want {
				t.Errorf("WaylandSession() = %v, want %v", got, tt.want)
			}
		})
	}
}
