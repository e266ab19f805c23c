package platform

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"right edge exclusive", Point{110, 40}, false},
		{"bottom edge exclusive", Point{50, 70}, false},
		{"left of rect", Point{9, 40}, false},
		{"above rect", Point{50, 19}, false},
		{"last interior pixel", Point{109, 69}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectContains_ZeroSize(t *testing.T) {
	r := Rect{X: 5, Y: 5}
	if r.Contains(Point{5, 5}) {
		t.Error("zero-size rect should contain nothing")
	}
}

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		input string
		want  MouseButton
	}{
		{"left", MouseLeft},
		{"LEFT", MouseLeft},
		{"right", MouseRight},
		{"middle", MouseMiddle},
		{"x1", MouseX1},
		{"back", MouseX1},
		{"x2", MouseX2},
		{"forward", MouseX2},
	}
	for _, tt := range tests {
		got, err := ParseMouseButton(tt.input)
		if err != nil {
			t.Errorf("ParseMouseButton(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseMouseButton(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseMouseButton("pinky"); err == nil {
		t.Error("ParseMouseButton(\"pinky\") should fail")
	}
}

func TestParseWindowState(t *testing.T) {
	tests := []struct {
		input string
		want  WindowState
	}{
		{"normal", WindowNormal},
		{"minimized", WindowMinimized},
		{"minimize", WindowMinimized},
		{"Maximized", WindowMaximized},
		{"fullscreen", WindowFullscreen},
	}
	for _, tt := range tests {
		got, err := ParseWindowState(tt.input)
		if err != nil {
			t.Errorf("ParseWindowState(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseWindowState(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseWindowState("sideways"); err == nil {
		t.Error("ParseWindowState(\"sideways\") should fail")
	}
}

func TestKeyNormalize(t *testing.T) {
	if Key(" Enter ").Normalize() != KeyEnter {
		t.Errorf("Normalize(\" Enter \") = %q, want %q", Key(" Enter ").Normalize(), KeyEnter)
	}
	if Key("F5").Normalize() != Key("f5") {
		t.Error("Normalize should lowercase")
	}
}
