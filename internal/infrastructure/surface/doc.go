// Package surface provides the native window.Surface backed by webview_go
// (WebKitGTK on Linux, WKWebView on macOS, WebView2 on Windows). Builds
// without cgo get a New that returns window.ErrSurfaceUnavailable.
package surface
