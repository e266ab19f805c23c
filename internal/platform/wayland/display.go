//go:build linux

package wayland

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/deskhand/deskhand/internal/platform"
)

// wlrOutput mirrors one entry of `wlr-randr --json`.
type wlrOutput struct {
	Name     string  `json:"name"`
	Enabled  bool    `json:"enabled"`
	Scale    float64 `json:"scale"`
	Primary  bool    `json:"primary"`
	Position struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"position"`
	Modes []struct {
		Width   int     `json:"width"`
		Height  int     `json:"height"`
		Refresh float64 `json:"refresh"`
		Current bool    `json:"current"`
	} `json:"modes"`
	Transform string `json:"transform"`
}

// Displays shells out to wlr-randr, the only portable way to enumerate
// outputs on wlroots compositors without a native protocol binding.
func (b *Backend) Displays() ([]platform.DisplayInfo, error) {
	if _, err := exec.LookPath("wlr-randr"); err != nil {
		return nil, fmt.Errorf("wlr-randr not found: %w", err)
	}
	out, err := exec.Command("wlr-randr", "--json").Output()
	if err != nil {
		return nil, fmt.Errorf("wlr-randr failed: %w", err)
	}
	return parseWlrRandr(out)
}

// parseWlrRandr converts wlr-randr JSON output to display snapshots.
func parseWlrRandr(data []byte) ([]platform.DisplayInfo, error) {
	var outputs []wlrOutput
	if err := json.Unmarshal(data, &outputs); err != nil {
		return nil, fmt.Errorf("unexpected wlr-randr output: %w", err)
	}

	var displays []platform.DisplayInfo
	for _, o := range outputs {
		if !o.Enabled {
			continue
		}
		width, height := 0, 0
		refresh := 60.0
		for _, m := range o.Modes {
			if m.Current {
				width, height = m.Width, m.Height
				if m.Refresh > 0 {
					refresh = m.Refresh
				}
				break
			}
		}
		if width == 0 || height == 0 {
			continue
		}
		scale := o.Scale
		if scale <= 0 {
			scale = 1.0
		}
		// Modes report physical pixels; logical bounds divide by scale.
		bounds := platform.Rect{
			X:      o.Position.X,
			Y:      o.Position.Y,
			Width:  int(float64(width) / scale),
			Height: int(float64(height) / scale),
		}
		displays = append(displays, platform.DisplayInfo{
			ID:           o.Name,
			Name:         o.Name,
			Bounds:       bounds,
			WorkArea:     bounds,
			Scale:        scale,
			PhysicalSize: platform.Size{Width: width, Height: height},
			RefreshRate:  refresh,
			Rotation:     transformDegrees(o.Transform),
			IsPrimary:    o.Primary,
		})
	}
	if len(displays) == 0 {
		return nil, platform.ErrNoDisplays
	}
	platform.NormalizePrimary(displays)
	return displays, nil
}

// transformDegrees converts a wlr output transform name to degrees.
func transformDegrees(transform string) int {
	switch transform {
	case "90", "flipped-90":
		return 90
	case "180", "flipped-180":
		return 180
	case "270", "flipped-270":
		return 270
	default:
		return 0
	}
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
