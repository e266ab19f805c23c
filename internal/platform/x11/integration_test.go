//go:build linux

package x11

import (
	"errors"
	"strings"
	"testing"

	"github.com/deskhand/deskhand/internal/platform"
)

// liveBackend connects to the X server named by DISPLAY, skipping the test in
// headless environments.
func liveBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New()
	if err != nil {
		t.Skipf("no usable X11 display: %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

func TestClipboardRoundTrip(t *testing.T) {
	b := liveBackend(t)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "hello clipboard"},
		{"unicode", "Unicode 世界🌍"},
		{"large", strings.Repeat("clipboard ", 1000)},
		{"multiline", "line one\nline two\n\tindented"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.ClipboardSetText(tt.text); err != nil {
				t.Fatalf("ClipboardSetText: %v", err)
			}
			got, err := b.ClipboardGetText()
			if err != nil {
				t.Fatalf("ClipboardGetText: %v", err)
			}
			if got != tt.text {
				t.Errorf("round trip = %q, want %q", got, tt.text)
			}

			has, err := b.ClipboardHasText()
			if err != nil {
				t.Fatalf("ClipboardHasText: %v", err)
			}
			if want := tt.text != ""; has != want {
				t.Errorf("ClipboardHasText = %v, want %v", has, want)
			}
		})
	}

	if err := b.ClipboardClear(); err != nil {
		t.Fatalf("ClipboardClear: %v", err)
	}
	if got, err := b.ClipboardGetText(); err != nil || got != "" {
		t.Errorf("after clear: text %q, err %v", got, err)
	}
}

// A second connection forces the full selection negotiation: the owner must
// answer the requestor's ConvertSelection instead of the in-process shortcut.
func TestClipboardServesOtherClients(t *testing.T) {
	owner := liveBackend(t)
	reader := liveBackend(t)

	for _, text := range []string{"served across connections", "Unicode 世界🌍"} {
		if err := owner.ClipboardSetText(text); err != nil {
			t.Fatalf("ClipboardSetText: %v", err)
		}
		atoms, err := owner.clipboardAtoms()
		if err != nil {
			t.Fatalf("clipboardAtoms: %v", err)
		}

		done := make(chan struct{})
		go func() {
			owner.serviceSelectionRequests(atoms, 100)
			close(done)
		}()
		got, err := reader.ClipboardGetText()
		<-done
		if err != nil {
			t.Fatalf("ClipboardGetText: %v", err)
		}
		if got != text {
			t.Errorf("served text = %q, want %q", got, text)
		}
	}
}

// Characters without a keycode on the current layout fail uniformly with
// NotImplementedError on both the plain and the shifted typing path.
func TestTypeUnicodeUnmappedCharacters(t *testing.T) {
	b := liveBackend(t)

	var nie *platform.NotImplementedError
	if err := b.typeRune('␀'); !errors.As(err, &nie) {
		t.Errorf("plain path error = %v, want NotImplementedError", err)
	}
	if err := b.typeShiftedSym('~', "NoSuchKeysym"); !errors.As(err, &nie) {
		t.Errorf("shifted path error = %v, want NotImplementedError", err)
	}
}

func TestMouseMoveExactness(t *testing.T) {
	b := liveBackend(t)

	start, err := b.MousePosition()
	if err != nil {
		t.Fatalf("MousePosition: %v", err)
	}
	defer b.MouseMoveTo(start.X, start.Y, 0)

	if err := b.MouseMoveTo(137, 79, 0); err != nil {
		t.Fatalf("MouseMoveTo: %v", err)
	}
	pos, err := b.MousePosition()
	if err != nil {
		t.Fatalf("MousePosition: %v", err)
	}
	if pos.X != 137 || pos.Y != 79 {
		t.Errorf("position after move = (%d, %d), want (137, 79)", pos.X, pos.Y)
	}

	// A relative move and its inverse land back on the same point.
	if err := b.MouseMoveRel(31, -17, 0); err != nil {
		t.Fatalf("MouseMoveRel: %v", err)
	}
	if err := b.MouseMoveRel(-31, 17, 0); err != nil {
		t.Fatalf("MouseMoveRel: %v", err)
	}
	pos, err = b.MousePosition()
	if err != nil {
		t.Fatalf("MousePosition: %v", err)
	}
	if pos.X != 137 || pos.Y != 79 {
		t.Errorf("position after inverse moves = (%d, %d), want (137, 79)", pos.X, pos.Y)
	}
}
