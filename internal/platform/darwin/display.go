//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework AppKit -framework Foundation
#include <CoreGraphics/CoreGraphics.h>
#import <AppKit/AppKit.h>

typedef struct {
    uint32_t id;
    double x, y, width, height;
    double workX, workY, workWidth, workHeight;
    double scale;
    double refresh;
    int rotation;
    int isMain;
} display_info;

// Fill infos with up to max active displays. The work area comes from the
// matching NSScreen visibleFrame, converted from the bottom-left Cocoa
// coordinate space to the top-left Quartz one.
static int cg_list_displays(display_info *infos, int max) {
    CGDirectDisplayID ids[16];
    uint32_t count = 0;
    if (CGGetActiveDisplayList(16, ids, &count) != kCGErrorSuccess) return -1;
    if ((int)count > max) count = max;

    double mainHeight = CGDisplayBounds(CGMainDisplayID()).size.height;

    for (uint32_t i = 0; i < count; i++) {
        display_info *d = &infos[i];
        CGRect bounds = CGDisplayBounds(ids[i]);
        d->id = ids[i];
        d->x = bounds.origin.x;
        d->y = bounds.origin.y;
        d->width = bounds.size.width;
        d->height = bounds.size.height;
        d->workX = bounds.origin.x;
        d->workY = bounds.origin.y;
        d->workWidth = bounds.size.width;
        d->workHeight = bounds.size.height;
        d->scale = 1.0;
        d->refresh = 0.0;
        d->rotation = (int)CGDisplayRotation(ids[i]);
        d->isMain = CGDisplayIsMain(ids[i]);

        CGDisplayModeRef mode = CGDisplayCopyDisplayMode(ids[i]);
        if (mode) {
            d->refresh = CGDisplayModeGetRefreshRate(mode);
            size_t pixels = CGDisplayModeGetPixelWidth(mode);
            size_t points = CGDisplayModeGetWidth(mode);
            if (points > 0) d->scale = (double)pixels / (double)points;
            CGDisplayModeRelease(mode);
        }

        for (NSScreen *screen in [NSScreen screens]) {
            NSNumber *num = screen.deviceDescription[@"NSScreenNumber"];
            if (num && [num unsignedIntValue] == ids[i]) {
                NSRect vf = screen.visibleFrame;
                d->workX = vf.origin.x;
                d->workY = mainHeight - (vf.origin.y + vf.size.height);
                d->workWidth = vf.size.width;
                d->workHeight = vf.size.height;
                break;
            }
        }
    }
    return (int)count;
}
*/
import "C"

import (
	"fmt"

	"github.com/deskhand/deskhand/internal/platform"
)

const maxDisplays = 16

// Displays enumerates active Quartz displays. The scale is the pixel to
// point ratio of the current display mode (2.0 on Retina panels), and the
// reported physical size is the backing pixel size.
func (b *Backend) Displays() ([]platform.DisplayInfo, error) {
	infos := make([]C.display_info, maxDisplays)
	n := int(C.cg_list_displays(&infos[0], maxDisplays))
	if n < 0 {
		return nil, fmt.Errorf("display enumeration failed")
	}
	if n == 0 {
		return nil, platform.ErrNoDisplays
	}

	displays := make([]platform.DisplayInfo, 0, n)
	for _, d := range infos[:n] {
		bounds := platform.Rect{
			X:      int(d.x),
			Y:      int(d.y),
			Width:  int(d.width),
			Height: int(d.height),
		}
		scale := float64(d.scale)
		if scale <= 0 {
			scale = 1.0
		}
		refresh := float64(d.refresh)
		if refresh <= 0 {
			// Built-in panels report 0 through this API.
			refresh = 60.0
		}
		displays = append(displays, platform.DisplayInfo{
			ID:     fmt.Sprintf("%d", uint32(d.id)),
			Name:   fmt.Sprintf("display-%d", uint32(d.id)),
			Bounds: bounds,
			WorkArea: platform.Rect{
				X:      int(d.workX),
				Y:      int(d.workY),
				Width:  int(d.workWidth),
				Height: int(d.workHeight),
			},
			Scale: scale,
			PhysicalSize: platform.Size{
				Width:  int(float64(bounds.Width) * scale),
				Height: int(float64(bounds.Height) * scale),
			},
			RefreshRate: refresh,
			Rotation:    int(d.rotation),
			IsPrimary:   d.isMain != 0,
		})
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
