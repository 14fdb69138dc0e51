//go:build cgo

package surface

import (
	webview "github.com/webview/webview_go"

	"github.com/GriffinCanCode/taupy/internal/domain/window"
)

var _ window.Surface = (*webviewSurface)(nil)

// webviewSurface adapts webview_go to window.Surface.
type webviewSurface struct {
	w webview.WebView
}

// New creates the native window and its web view. It must run on the main
// OS thread.
func New(opts window.SurfaceOptions) (window.Surface, error) {
	w := webview.New(opts.Debug)
	if w == nil {
		return nil, window.ErrSurfaceUnavailable
	}
	return &webviewSurface{w: w}, nil
}

func (s *webviewSurface) SetTitle(title string) { s.w.SetTitle(title) }

func (s *webviewSurface) SetSize(width, height int, hint window.Hint) {
	s.w.SetSize(width, height, toWebviewHint(hint))
}

func (s *webviewSurface) Navigate(url string) { s.w.Navigate(url) }

func (s *webviewSurface) Run() { s.w.Run() }

func (s *webviewSurface) Terminate() { s.w.Terminate() }

func (s *webviewSurface) Dispatch(f func()) { s.w.Dispatch(f) }

func (s *webviewSurface) Destroy() { s.w.Destroy() }

func toWebviewHint(h window.Hint) webview.Hint {
	switch h {
	case window.HintMin:
		return webview.HintMin
	case window.HintMax:
		return webview.HintMax
	case window.HintFixed:
		return webview.HintFixed
	default:
		return webview.HintNone
	}
}
