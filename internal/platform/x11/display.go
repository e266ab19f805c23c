//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/deskhand/deskhand/internal/platform"
)

// Displays enumerates connected RandR outputs with an active CRTC. The work
// area comes from the EWMH _NET_WORKAREA property, clipped to each display's
// bounds.
func (b *Backend) Displays() ([]platform.DisplayInfo, error) {
	conn := b.xu.Conn()
	res, err := randr.GetScreenResources(conn, b.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources failed: %w", err)
	}

	primary, err := randr.GetOutputPrimary(conn, b.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr primary output failed: %w", err)
	}

	modes := make(map[randr.Mode]randr.ModeInfo, len(res.Modes))
	for _, m := range res.Modes {
		modes[randr.Mode(m.Id)] = m
	}

	workArea := b.desktopWorkArea()

	var displays []platform.DisplayInfo
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil || info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil || crtc.Width == 0 || crtc.Height == 0 {
			continue
		}

		bounds := platform.Rect{
			X:      int(crtc.X),
			Y:      int(crtc.Y),
			Width:  int(crtc.Width),
			Height: int(crtc.Height),
		}

		// X11 reports pixels unscaled, so the logical-to-physical scale
		// is 1.0 and physical size equals the bounds.
		d := platform.DisplayInfo{
			ID:           fmt.Sprintf("%d", output),
			Name:         string(info.Name),
			Bounds:       bounds,
			WorkArea:     clipRect(workArea, bounds),
			Scale:        1.0,
			PhysicalSize: bounds.Size(),
			RefreshRate:  refreshRate(modes[crtc.Mode]),
			Rotation:     rotationDegrees(crtc.Rotation),
			IsPrimary:    output == primary.Output,
		}
		displays = append(displays, d)
	}

	if len(displays) == 0 {
		return nil, platform.ErrNoDisplays
	}
	platform.NormalizePrimary(displays)
	return displays, nil
}

// PrimaryDisplay returns the display marked primary.
func (b *Backend) PrimaryDisplay() (platform.DisplayInfo, error) {
	displays, err := b.Displays()
	if err != nil {
		return platform.DisplayInfo{}, err
	}
	for _, d := range displays {
		if d.IsPrimary {
			return d, nil
		}
	}
	return displays[0], nil
}

// VirtualScreenRect returns the bounding box of all display bounds.
func (b *Backend) VirtualScreenRect() (platform.Rect, error) {
	displays, err := b.Displays()
	if err != nil {
		return platform.Rect{}, err
	}
	return platform.VirtualRect(displays), nil
}

// desktopWorkArea returns the current desktop's work area, or the zero rect
// when the window manager does not publish one.
func (b *Backend) desktopWorkArea() platform.Rect {
	areas, err := ewmh.WorkareaGet(b.xu)
	if err != nil || len(areas) == 0 {
		return platform.Rect{}
	}
	idx := 0
	if desk, err := ewmh.CurrentDesktopGet(b.xu); err == nil && int(desk) < len(areas) {
		idx = int(desk)
	}
	wa := areas[idx]
	return platform.Rect{X: wa.X, Y: wa.Y, Width: int(wa.Width), Height: int(wa.Height)}
}

// clipRect intersects the desktop work area with one display's bounds. An
// empty work area falls back to the bounds themselves.
func clipRect(workArea, bounds platform.Rect) platform.Rect {
	if workArea.Width == 0 || workArea.Height == 0 {
		return bounds
	}
	x1 := max(workArea.X, bounds.X)
	y1 := max(workArea.Y, bounds.Y)
	x2 := min(workArea.X+workArea.Width, bounds.X+bounds.Width)
	y2 := min(workArea.Y+workArea.Height, bounds.Y+bounds.Height)
	if x2 <= x1 || y2 <= y1 {
		return bounds
	}
	return platform.Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// refreshRate derives the refresh rate in Hz from the mode timings, with a
// 60 Hz fallback for modes with incomplete timing data.
func refreshRate(mode randr.ModeInfo) float64 {
	total := float64(mode.Htotal) * float64(mode.Vtotal)
	if mode.DotClock == 0 || total == 0 {
		return 60.0
	}
	return float64(mode.DotClock) / total
}

// rotationDegrees converts the RandR rotation bitmask to degrees.
func rotationDegrees(rotation uint16) int {
	switch {
	case rotation&randr.RotationRotate90 != 0:
		return 90
	case rotation&randr.RotationRotate180 != 0:
		return 180
	case rotation&randr.RotationRotate270 != 0:
		return 270
	default:
		return 0
	}
}
