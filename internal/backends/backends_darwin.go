//go:build darwin && cgo

package backends

import (
	"github.com/deskhand/deskhand/internal/platform"
	"github.com/deskhand/deskhand/internal/platform/darwin"
)

func init() {
	platform.NewBackendFunc = func() (platform.Backend, error) {
		return darwin.New()
	}
}
