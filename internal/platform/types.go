package platform

import (
	"fmt"
	"strings"
)

// Point is an absolute or relative pixel coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Rect is a screen rectangle. Width and Height are never negative.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, matching window hit-testing semantics.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2
)

// String returns the flag-style name of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseX1:
		return "x1"
	case MouseX2:
		return "x2"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	case "x1", "back":
		return MouseX1, nil
	case "x2", "forward":
		return MouseX2, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, middle, x1, or x2)", s)
	}
}

// Key is a logical key identity. Each adapter owns a private mapping from Key
// to native key codes; aliases like "enter" and "return" may collapse onto the
// same code. Any single printable character is also a valid Key.
type Key string

// Common logical keys. Adapters accept these plus bare characters.
const (
	KeyEnter     Key = "enter"
	KeyReturn    Key = "return"
	KeyTab       Key = "tab"
	KeySpace     Key = "space"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyEscape    Key = "escape"
	KeyShift     Key = "shift"
	KeyCtrl      Key = "ctrl"
	KeyAlt       Key = "alt"
	KeyCmd       Key = "cmd"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPageUp    Key = "pageup"
	KeyPageDown  Key = "pagedown"
)

// Normalize lowercases and trims a key name for map lookup.
func (k Key) Normalize() Key {
	return Key(strings.ToLower(strings.TrimSpace(string(k))))
}

// WindowState describes a window's coarse state.
type WindowState int

const (
	WindowNormal WindowState = iota
	WindowMinimized
	WindowMaximized
	WindowFullscreen
)

func (s WindowState) String() string {
	switch s {
	case WindowNormal:
		return "normal"
	case WindowMinimized:
		return "minimized"
	case WindowMaximized:
		return "maximized"
	case WindowFullscreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseWindowState converts a string flag value to WindowState.
func ParseWindowState(s string) (WindowState, error) {
	switch strings.ToLower(s) {
	case "normal":
		return WindowNormal, nil
	case "minimized", "minimize":
		return WindowMinimized, nil
	case "maximized", "maximize":
		return WindowMaximized, nil
	case "fullscreen":
		return WindowFullscreen, nil
	default:
		return WindowNormal, fmt.Errorf("unknown window state: %q (expected normal, minimized, maximized, or fullscreen)", s)
	}
}

// WindowHandle is a platform-opaque window identifier. It is the only stable
// cross-call identity a window has; every other WindowInfo field is a snapshot.
type WindowHandle uint64

// DisplayInfo is a point-in-time snapshot of one display. Constructed fresh on
// every enumeration call, never cached or mutated.
type DisplayInfo struct {
	ID           string  `yaml:"id"            json:"id"`
	Name         string  `yaml:"name"          json:"name"`
	Bounds       Rect    `yaml:"bounds"        json:"bounds"`
	WorkArea     Rect    `yaml:"work_area"     json:"work_area"`
	Scale        float64 `yaml:"scale"         json:"scale"`
	PhysicalSize Size    `yaml:"physical_size" json:"physical_size"`
	RefreshRate  float64 `yaml:"refresh_rate"  json:"refresh_rate"`
	Rotation     int     `yaml:"rotation"      json:"rotation"`
	IsPrimary    bool    `yaml:"is_primary"    json:"is_primary"`
}

// WindowInfo is a point-in-time snapshot of one window. Enumeration filters
// out zero-size windows, so Rect.Width and Rect.Height are always positive.
type WindowInfo struct {
	Handle        WindowHandle `yaml:"handle"           json:"handle"`
	Title         string       `yaml:"title"            json:"title"`
	ClassName     string       `yaml:"class_name"       json:"class_name"`
	PID           int          `yaml:"pid"              json:"pid"`
	ProcessName   string       `yaml:"process_name"     json:"process_name"`
	Rect          Rect         `yaml:"rect"             json:"rect"`
	ClientRect    Rect         `yaml:"client_rect"      json:"client_rect"`
	State         WindowState  `yaml:"state"            json:"state"`
	IsVisible     bool         `yaml:"is_visible"       json:"is_visible"`
	IsActive      bool         `yaml:"is_active"        json:"is_active"`
	IsAlwaysOnTop bool         `yaml:"is_always_on_top" json:"is_always_on_top"`
	Opacity       float64      `yaml:"opacity"          json:"opacity"`
}
