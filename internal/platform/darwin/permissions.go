//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreGraphics
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>

static int ax_is_trusted() {
    return AXIsProcessTrusted();
}

static int cg_has_screen_capture() {
    return CGPreflightScreenCaptureAccess();
}
*/
import "C"

// CheckPermissions reports the macOS privacy capabilities relevant to
// automation. Status query only; it never triggers a system prompt.
// Without accessibility permission, synthesized input is silently dropped
// by the session.
func (b *Backend) CheckPermissions() (map[string]bool, error) {
	return map[string]bool{
		"accessibility":    C.ax_is_trusted() != 0,
		"screen_recording": C.cg_has_screen_capture() != 0,
	}, nil
}
