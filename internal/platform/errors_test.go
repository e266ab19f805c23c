package platform

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnknownKeyError_Message(t *testing.T) {
	err := &UnknownKeyError{Key: "invalid_key_xyz"}
	if !strings.Contains(strings.ToLower(err.Error()), "unknown key") {
		t.Errorf("message %q should mention the unknown key", err.Error())
	}
	if !strings.Contains(err.Error(), "invalid_key_xyz") {
		t.Errorf("message %q should include the key name", err.Error())
	}
}

func TestUnsupportedButtonError_Message(t *testing.T) {
	for _, b := range []MouseButton{MouseX1, MouseX2} {
		err := &UnsupportedButtonError{Button: b}
		if !strings.Contains(strings.ToLower(err.Error()), "unsupported button") {
			t.Errorf("message %q should mention the unsupported button", err.Error())
		}
	}
}

func TestCapabilityError_CarriesOpAndPlatform(t *testing.T) {
	err := &CapabilityError{Op: "move_window", Platform: "macos"}
	if !strings.Contains(err.Error(), "move_window") || !strings.Contains(err.Error(), "macos") {
		t.Errorf("message %q should name the operation and platform", err.Error())
	}
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("mouse press: %w", &UnsupportedButtonError{Button: MouseX1})

	var ube *UnsupportedButtonError
	if !errors.As(wrapped, &ube) {
		t.Fatal("errors.As should find UnsupportedButtonError through wrapping")
	}
	if ube.Button != MouseX1 {
		t.Errorf("Button = %v, want %v", ube.Button, MouseX1)
	}
}

func TestSentinelErrors(t *testing.T) {
	if !errors.Is(fmt.Errorf("primary: %w", ErrNoDisplays), ErrNoDisplays) {
		t.Error("ErrNoDisplays should survive wrapping")
	}
	if ErrUnsupported.Error() == "" {
		t.Error("ErrUnsupported should carry a message")
	}
}
