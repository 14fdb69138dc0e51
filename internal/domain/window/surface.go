package window

import "errors"

// ErrSurfaceUnavailable is returned when no native rendering surface can be
// created, e.g. a build without cgo.
var ErrSurfaceUnavailable = errors.New("native web surface unavailable")

// Hint selects how SetSize applies a width and height.
type Hint int

const (
	HintNone  Hint = iota // current size
	HintMin               // lower bound
	HintMax               // upper bound
	HintFixed             // current size, user cannot resize
)

// Surface is a native window with an embedded web view. Run blocks on the
// UI thread until the window closes. Dispatch and Terminate may be called
// from any goroutine; everything else belongs to the UI thread.
type Surface interface {
	SetTitle(title string)
	SetSize(width, height int, hint Hint)
	Navigate(url string)
	Run()
	Terminate()
	Dispatch(f func())
	Destroy()
}

// SurfaceOptions are fixed at construction time.
type SurfaceOptions struct {
	Debug bool // enables the web inspector
}

// SurfaceFactory creates the window and its web view together.
type SurfaceFactory func(opts SurfaceOptions) (Surface, error)
