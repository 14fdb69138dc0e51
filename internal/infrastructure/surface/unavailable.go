//go:build !cgo

package surface

import "github.com/GriffinCanCode/taupy/internal/domain/window"

// New always fails: the web view needs cgo.
func New(window.SurfaceOptions) (window.Surface, error) {
	return nil, window.ErrSurfaceUnavailable
}
